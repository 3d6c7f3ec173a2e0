package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// SocialMediaAccount - один аккаунт инфлюенсера в соцсети
type SocialMediaAccount struct {
	Platform  string `json:"platform"`
	Followers int64  `json:"followers"`
}

// User - общая запись для обеих ролей. Ролевые поля (industry/website для
// компаний, socialMedia/categories для инфлюенсеров) живут в одной таблице.
type User struct {
	BaseModel
	Role         UserRole `gorm:"type:varchar(20);not null;index" json:"role"`
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	ContactInfo  string   `gorm:"not null" json:"contactInfo"`

	// Company-specific
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Website     string `json:"website,omitempty"`

	// Influencer-specific: [{"platform": "Instagram", "followers": 120000}, ...]
	SocialMedia datatypes.JSON `gorm:"type:jsonb" json:"socialMedia,omitempty"`
	// Influencer-specific: ["Fashion", "Tech"]
	Categories datatypes.JSON `gorm:"type:jsonb" json:"categories,omitempty"`

	Description string `json:"description,omitempty"`
}

// SocialMediaAccounts десериализует JSONB колонку
func (u *User) SocialMediaAccounts() []SocialMediaAccount {
	if len(u.SocialMedia) == 0 {
		return nil
	}
	var accounts []SocialMediaAccount
	if err := json.Unmarshal(u.SocialMedia, &accounts); err != nil {
		return nil
	}
	return accounts
}

// CategoryList десериализует JSONB колонку категорий
func (u *User) CategoryList() []string {
	if len(u.Categories) == 0 {
		return nil
	}
	var categories []string
	if err := json.Unmarshal(u.Categories, &categories); err != nil {
		return nil
	}
	return categories
}

// TotalFollowers - сумма подписчиков по всем платформам.
// По ней фильтрует discover-страница компаний.
func (u *User) TotalFollowers() int64 {
	var total int64
	for _, acc := range u.SocialMediaAccounts() {
		total += acc.Followers
	}
	return total
}
