package validator

import (
	"log"
	"strings"

	"wematch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// enumRule - кастомный тег и допустимые значения (для сообщения об ошибке)
type enumRule struct {
	tag     string
	fn      validator.Func
	allowed []string
}

var enumRules = []enumRule{
	{"is-user-role", enumFunc(models.UserRole.IsValid), models.EnumValues(models.UserRoles)},
	{"is-signup-role", enumFunc(isSignupRole), []string{string(models.UserRoleUser), string(models.UserRoleOrganization)}},
	{"is-category", enumFunc(models.Category.IsValid), models.EnumValues(models.Categories)},
	{"is-opportunity-type", enumFunc(models.OpportunityType.IsValid), models.EnumValues(models.OpportunityTypes)},
	{"is-experience-level", enumFunc(models.ExperienceLevel.IsValid), models.EnumValues(models.ExperienceLevels)},
	{"is-payment-type", enumFunc(models.PaymentType.IsValid), models.EnumValues(models.PaymentTypes)},
}

// registerCustomRules регистрирует все кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// приложение не должно запускаться без правил
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	for _, rule := range enumRules {
		mustRegister(rule.tag, rule.fn)
	}
}

// enumFunc строит правило из метода IsValid. Пустые значения пропускаются - для этого есть 'required'.
func enumFunc[T ~string](valid func(T) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(T(value))
	}
}

// При регистрации можно выбрать только USER или ORGANIZATION
func isSignupRole(r models.UserRole) bool {
	return r == models.UserRoleUser || r == models.UserRoleOrganization
}

func enumMessage(tag string) (string, bool) {
	for _, rule := range enumRules {
		if rule.tag == tag {
			return "Must be one of: " + strings.Join(rule.allowed, ", "), true
		}
	}
	return "", false
}
