package repositories

import (
	"adsense_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	FindThread(db *gorm.DB, userID, otherID string) ([]models.Message, error)
	FindCounterpartIDs(db *gorm.DB, userID string) ([]string, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

// FindThread - оба направления переписки, по возрастанию времени создания.
// При равных created_at порядок не определен - это осознанное упрощение.
func (r *MessageRepositoryImpl) FindThread(db *gorm.DB, userID, otherID string) ([]models.Message, error) {
	messages := []models.Message{}
	err := db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// FindCounterpartIDs выводит "диалоги": множество контрагентов по всем
// сообщениям пользователя. Сам пользователь исключается (переписка с собой).
func (r *MessageRepositoryImpl) FindCounterpartIDs(db *gorm.DB, userID string) ([]string, error) {
	ids := []string{}
	err := db.Raw(`
		SELECT DISTINCT CASE WHEN sender_id = @uid THEN receiver_id ELSE sender_id END AS counterpart
		FROM messages
		WHERE (sender_id = @uid OR receiver_id = @uid)
		  AND NOT (sender_id = @uid AND receiver_id = @uid)`,
		map[string]interface{}{"uid": userID},
	).Scan(&ids).Error
	return ids, err
}
