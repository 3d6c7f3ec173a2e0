package repositories

import (
	"strings"

	"adsense_backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByUser(db *gorm.DB, userID string) ([]models.Notification, error)
	ExistsWithMessageContaining(db *gorm.DB, userID, substring string) (bool, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&notifications).Error
	return notifications, err
}

// ExistsWithMessageContaining - best-effort дедупликация по подстроке
// текста уведомления. Не точная и не race-safe (см. DESIGN.md).
// Подстрока сравнивается буквально: % и _ из названия объявления
// не должны работать как wildcards.
func (r *NotificationRepositoryImpl) ExistsWithMessageContaining(db *gorm.DB, userID, substring string) (bool, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND message LIKE ?", userID, "%"+escapeLike(substring)+"%").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// escapeLike экранирует спецсимволы LIKE (escape-символ по умолчанию
// в postgres - обратный слэш)
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
