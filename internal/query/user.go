package query

import (
	"strings"

	"wematch_backend/internal/models"
	"wematch_backend/pkg/apperrors"
)

// UserFilter - фильтр админского списка пользователей
type UserFilter struct {
	Role   string `form:"role"`
	Search string `form:"search"`
}

func BuildUserPlan(page Page, f UserFilter) (*Plan, error) {
	plan := newPlan(page)
	errs := map[string]string{}

	enumEq(plan, errs, "role", "role", f.Role, models.UserRole.IsValid, models.EnumValues(models.UserRoles))
	if v := strings.TrimSpace(f.Search); v != "" {
		pattern := Contains(v)
		plan.Where("(email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?)", pattern, pattern, pattern)
	}
	if len(errs) > 0 {
		return nil, apperrors.ValidationError(errs)
	}

	plan.orderBy("created_at", true)
	plan.orderBy("id", true)
	return plan, nil
}

// OrganizationFilter - фильтр публичного списка организаций
type OrganizationFilter struct {
	Name     string `form:"name"`
	Location string `form:"location"`
}

func BuildOrganizationPlan(page Page, f OrganizationFilter) *Plan {
	plan := newPlan(page)
	if v := strings.TrimSpace(f.Name); v != "" {
		plan.Where("name ILIKE ?", Contains(v))
	}
	if v := strings.TrimSpace(f.Location); v != "" {
		plan.Where("location ILIKE ?", Contains(v))
	}
	plan.orderBy("name", false)
	plan.orderBy("id", false)
	return plan
}
