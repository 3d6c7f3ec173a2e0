package dto

import (
	"time"

	"adsense_backend/internal/models"
)

// NotificationResponse - одно уведомление из ленты пользователя
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResponse - пользователь наружу. Пароль не сериализуется никогда.
type UserResponse struct {
	ID          string          `json:"id"`
	Role        models.UserRole `json:"role"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	ContactInfo string          `json:"contactInfo"`

	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Website     string `json:"website,omitempty"`

	SocialMedia []models.SocialMediaAccount `json:"socialMedia,omitempty"`
	Categories  []string                    `json:"categories,omitempty"`

	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateProfileRequest - частичное обновление профиля.
// nil-поля не трогаются; ролевые поля применяются только к своей роли.
type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	ContactInfo *string `json:"contactInfo,omitempty"`

	Industry    *string `json:"industry,omitempty"`
	CompanySize *string `json:"companySize,omitempty"`
	Website     *string `json:"website,omitempty"`

	SocialMedia []SocialMediaInput `json:"socialMedia,omitempty" validate:"omitempty,dive"`
	Categories  []string           `json:"categories,omitempty" validate:"omitempty,max=5,dive,is-ad-category"`

	Description *string `json:"description,omitempty"`
}

// InfluencerQuery - параметры discover-страницы компаний.
// Клиент шлет категории одной строкой через запятую
// (?categories=Fashion,Tech) - биндим как csv.
type InfluencerQuery struct {
	Search       string   `form:"search"`
	Categories   []string `form:"categories" collection_format:"csv" validate:"omitempty,dive,is-ad-category"`
	MinFollowers *int64   `form:"minFollowers" validate:"omitempty,gte=0"`
	MaxFollowers *int64   `form:"maxFollowers" validate:"omitempty,gte=0"`
}
