package handlers

import (
	"adsense_backend/internal/services"
	"adsense_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	AdHandler      *AdHandler
	MessageHandler *MessageHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, sc.AuthService),
		UserHandler:    NewUserHandler(base, sc.UserService),
		AdHandler:      NewAdHandler(base, sc.AdService),
		MessageHandler: NewMessageHandler(base, sc.MessageService),
	}
}
