package dto

import "adsense_backend/internal/models"

// SocialMediaInput - аккаунт соцсети при регистрации/обновлении профиля
type SocialMediaInput struct {
	Platform  string `json:"platform" validate:"required,is-platform"`
	Followers int64  `json:"followers" validate:"gte=0"`
}

// SignupRequest - запрос регистрации.
// Ролевые поля разрешены только для соответствующей роли: лишние
// отбрасываются сервисом, а не отклоняются.
type SignupRequest struct {
	Role        models.UserRole `json:"role" validate:"required,is-user-role"`
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6"`
	ContactInfo string          `json:"contactInfo" validate:"required"`

	// Поля для компании
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Website     string `json:"website,omitempty"`

	// Поля для инфлюенсера
	SocialMedia []SocialMediaInput `json:"socialMedia,omitempty" validate:"omitempty,dive"`
	Categories  []string           `json:"categories,omitempty" validate:"omitempty,max=5,dive,is-ad-category"`

	Description string `json:"description,omitempty"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - токен + пользователь (без пароля).
// Токен живет 1 час, refresh-механизма нет: истечение = повторный логин.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
