package services

import (
	"encoding/json"

	"adsense_backend/internal/auth"
	"adsense_backend/internal/models"
	"adsense_backend/internal/repositories"
	"adsense_backend/internal/services/dto"
	"adsense_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// Signup - регистрация. Создает пользователя и сразу выдает токен
// (email-верификации в продукте нет).
func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		ContactInfo:  req.ContactInfo,
		Description:  req.Description,
	}

	// Ролевые поля применяются только к своей роли, остальное молча
	// отбрасывается
	switch req.Role {
	case models.UserRoleCompany:
		user.Industry = req.Industry
		user.CompanySize = req.CompanySize
		user.Website = req.Website
	case models.UserRoleInfluencer:
		socialJSON, err := json.Marshal(req.SocialMedia)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		categoriesJSON, err := json.Marshal(req.Categories)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.SocialMedia = datatypes.JSON(socialJSON)
		user.Categories = datatypes.JSON(categoriesJSON)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}

// Login - аутентификация по email/паролю
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Не раскрываем, существует ли email
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}
