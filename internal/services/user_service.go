package services

import (
	"encoding/json"

	"adsense_backend/internal/models"
	"adsense_backend/internal/repositories"
	"adsense_backend/internal/services/dto"
	"adsense_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetNotifications(db *gorm.DB, userID string) ([]dto.NotificationResponse, error)
	DiscoverInfluencers(db *gorm.DB, query *dto.InfluencerQuery) ([]dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

// UpdateProfile - частичное обновление. nil-поля не трогаются,
// ролевые поля применяются только к соответствующей роли.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ContactInfo != nil {
		user.ContactInfo = *req.ContactInfo
	}
	if req.Description != nil {
		user.Description = *req.Description
	}

	if user.Role == models.UserRoleCompany {
		if req.Industry != nil {
			user.Industry = *req.Industry
		}
		if req.CompanySize != nil {
			user.CompanySize = *req.CompanySize
		}
		if req.Website != nil {
			user.Website = *req.Website
		}
	} else if user.Role == models.UserRoleInfluencer {
		if req.SocialMedia != nil {
			socialJSON, err := json.Marshal(req.SocialMedia)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			user.SocialMedia = datatypes.JSON(socialJSON)
		}
		if req.Categories != nil {
			categoriesJSON, err := json.Marshal(req.Categories)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			user.Categories = datatypes.JSON(categoriesJSON)
		}
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *UserServiceImpl) GetNotifications(db *gorm.DB, userID string) ([]dto.NotificationResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	notifications, err := s.notificationRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses, nil
}

// DiscoverInfluencers - поиск инфлюенсеров для компаний.
// Подстрока имени фильтруется в SQL; пересечение категорий и диапазон
// суммы подписчиков - в памяти по JSONB полям.
func (s *UserServiceImpl) DiscoverInfluencers(db *gorm.DB, query *dto.InfluencerQuery) ([]dto.UserResponse, error) {
	influencers, err := s.userRepo.FindInfluencers(db, query.Search)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]dto.UserResponse, 0, len(influencers))
	for i := range influencers {
		inf := &influencers[i]

		if len(query.Categories) > 0 && !hasAnyCategory(inf.CategoryList(), query.Categories) {
			continue
		}

		total := inf.TotalFollowers()
		if query.MinFollowers != nil && total < *query.MinFollowers {
			continue
		}
		if query.MaxFollowers != nil && total > *query.MaxFollowers {
			continue
		}

		results = append(results, *buildUserResponse(inf))
	}
	return results, nil
}

func hasAnyCategory(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// buildUserResponse строит публичное представление пользователя.
// Единственное место, где модель превращается в ответ - хеш пароля
// не может утечь наружу.
func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Role:        user.Role,
		Name:        user.Name,
		Email:       user.Email,
		ContactInfo: user.ContactInfo,
		Industry:    user.Industry,
		CompanySize: user.CompanySize,
		Website:     user.Website,
		SocialMedia: user.SocialMediaAccounts(),
		Categories:  user.CategoryList(),
		Description: user.Description,
		CreatedAt:   user.CreatedAt,
	}
}
