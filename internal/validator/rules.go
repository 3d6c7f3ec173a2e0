package validator

import (
	"log"

	"adsense_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации - это ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': роль пользователя (company|influencer)
	mustRegister("is-user-role", validateUserRole)

	// 'is-ad-category': категория объявления из фиксированного enum
	mustRegister("is-ad-category", validateAdCategory)

	// 'is-platform': платформа соцсети из фиксированного enum
	mustRegister("is-platform", validatePlatform)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleCompany, models.UserRoleInfluencer:
		return true
	default:
		return false
	}
}

func validateAdCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidAdCategory(value)
}

func validatePlatform(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidSocialPlatform(value)
}
