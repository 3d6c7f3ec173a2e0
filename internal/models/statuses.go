package models

type UserRole string
type AdStatus string

const (
	UserRoleCompany    UserRole = "company"
	UserRoleInfluencer UserRole = "influencer"

	// Жизненный цикл объявления: pending -> accepted | rejected.
	// Статус меняется ровно один раз, после этого терминален
	// (proof может быть добавлен к accepted отдельно).
	AdStatusPending  AdStatus = "pending"
	AdStatusAccepted AdStatus = "accepted"
	AdStatusRejected AdStatus = "rejected"
)

// Категории объявлений и интересов инфлюенсеров (фиксированный enum)
var AdCategories = []string{"Fashion", "Fitness", "Travel", "Tech", "Food"}

// Поддерживаемые платформы соцсетей
var SocialPlatforms = []string{"Instagram", "YouTube", "TikTok"}

// MaxInfluencerCategories - ограничение на число выбранных категорий
const MaxInfluencerCategories = 5

// IsValidAdCategory проверяет принадлежность к enum категорий
func IsValidAdCategory(category string) bool {
	for _, c := range AdCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidSocialPlatform проверяет принадлежность к enum платформ
func IsValidSocialPlatform(platform string) bool {
	for _, p := range SocialPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
