package services

import (
	"adsense_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	AdService           AdService
	MessageService      MessageService
	NotificationService NotificationService
}

// NewServiceContainer собирает сервисы поверх stateless-репозиториев.
func NewServiceContainer() *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	adRepo := repositories.NewAdRepository()
	messageRepo := repositories.NewMessageRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := NewNotificationService(notificationRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo),
		UserService:         NewUserService(userRepo, notificationRepo),
		AdService:           NewAdService(adRepo, userRepo, notificationService),
		MessageService:      NewMessageService(messageRepo, userRepo),
		NotificationService: notificationService,
	}
}
