package services

import (
	"encoding/json"
	"fmt"

	"adsense_backend/internal/logger"
	"adsense_backend/internal/models"
	"adsense_backend/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Типы событий (уходят в Data уведомления)
const (
	NotificationEventAdAccepted = "ad_accepted"
	NotificationEventAdRejected = "ad_rejected"
)

type NotificationService interface {
	NotifyAdAccepted(db *gorm.DB, ad *models.Ad, influencer *models.User) error
	NotifyAdRejected(db *gorm.DB, ad *models.Ad, influencer *models.User) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// NotifyAdAccepted добавляет компании уведомление о принятии объявления.
// Дедупликация - по подстроке текста (название объявления + имя
// инфлюенсера), best-effort (см. DESIGN.md).
func (s *notificationService) NotifyAdAccepted(db *gorm.DB, ad *models.Ad, influencer *models.User) error {
	substring := fmt.Sprintf("Your ad %q has been accepted by %s", ad.Title, influencer.Name)

	exists, err := s.notificationRepo.ExistsWithMessageContaining(db, ad.CompanyID, substring)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("accept notification already present, skipping", "ad_id", ad.ID)
		return nil
	}

	return s.notificationRepo.Create(db, &models.Notification{
		UserID:  ad.CompanyID,
		Message: substring + ".",
		Data:    notificationData(ad.ID, NotificationEventAdAccepted),
	})
}

// NotifyAdRejected добавляет уведомление об отказе - без дедупликации,
// асимметрия с accept-веткой сознательная (см. DESIGN.md).
func (s *notificationService) NotifyAdRejected(db *gorm.DB, ad *models.Ad, influencer *models.User) error {
	message := fmt.Sprintf("Your ad %q has been rejected by %s.", ad.Title, influencer.Name)

	return s.notificationRepo.Create(db, &models.Notification{
		UserID:  ad.CompanyID,
		Message: message,
		Data:    notificationData(ad.ID, NotificationEventAdRejected),
	})
}

func notificationData(adID, event string) datatypes.JSON {
	data, err := json.Marshal(map[string]string{
		"ad_id": adID,
		"event": event,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
