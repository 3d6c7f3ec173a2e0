package dto

import (
	"time"

	"adsense_backend/internal/models"
)

// SendMessageRequest - отправка сообщения.
// Существование получателя намеренно не проверяется: клиент выбирает
// его из списка пользователей.
type SendMessageRequest struct {
	Receiver string `json:"receiver" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// MessageResponse - одно сообщение треда
type MessageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationUserResponse - контрагент в списке диалогов
// (или кандидат для нового треда)
type ConversationUserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}
