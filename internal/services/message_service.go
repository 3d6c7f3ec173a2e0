package services

import (
	"adsense_backend/internal/models"
	"adsense_backend/internal/repositories"
	"adsense_backend/internal/services/dto"
	"adsense_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MessageService interface {
	Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	ListThread(db *gorm.DB, userID, otherUserID string) ([]dto.MessageResponse, error)
	ListConversations(db *gorm.DB, userID string) ([]dto.ConversationUserResponse, error)
	ListOtherUsers(db *gorm.DB, userID string) ([]dto.ConversationUserResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// Send - отправка сообщения. Отправитель должен резолвиться в живую
// запись; существование получателя не проверяется: сообщение в никуда
// просто никогда не всплывет в чужих тредах (см. DESIGN.md).
func (s *MessageServiceImpl) Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if err := s.checkUserExists(db, senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.Receiver,
		Content:    req.Content,
	}

	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildMessageResponse(message), nil
}

// ListThread - переписка двух пользователей в обе стороны,
// по возрастанию времени
func (s *MessageServiceImpl) ListThread(db *gorm.DB, userID, otherUserID string) ([]dto.MessageResponse, error) {
	if err := s.checkUserExists(db, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindThread(db, userID, otherUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *buildMessageResponse(&messages[i]))
	}
	return responses, nil
}

// ListConversations - контрагенты, с которыми есть хотя бы одно
// сообщение (в любую сторону)
func (s *MessageServiceImpl) ListConversations(db *gorm.DB, userID string) ([]dto.ConversationUserResponse, error) {
	if err := s.checkUserExists(db, userID); err != nil {
		return nil, err
	}

	counterpartIDs, err := s.messageRepo.FindCounterpartIDs(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users, err := s.userRepo.FindByIDs(db, counterpartIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildConversationUsers(users), nil
}

// ListOtherUsers - все пользователи кроме текущего, кандидаты
// для нового диалога
func (s *MessageServiceImpl) ListOtherUsers(db *gorm.DB, userID string) ([]dto.ConversationUserResponse, error) {
	if err := s.checkUserExists(db, userID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAllExcept(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildConversationUsers(users), nil
}

// checkUserExists резолвит subject токена в запись пользователя.
// Практически недостижимо (пользователи не удаляются), но протухший
// subject не должен молча работать дальше.
func (s *MessageServiceImpl) checkUserExists(db *gorm.DB, userID string) error {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildMessageResponse(message *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        message.ID,
		Sender:    message.SenderID,
		Receiver:  message.ReceiverID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

func buildConversationUsers(users []models.User) []dto.ConversationUserResponse {
	responses := make([]dto.ConversationUserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.ConversationUserResponse{
			ID:    users[i].ID,
			Name:  users[i].Name,
			Email: users[i].Email,
			Role:  users[i].Role,
		})
	}
	return responses
}
