package query

import (
	"strings"
	"time"

	"wematch_backend/internal/models"
	"wematch_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// OpportunityFilter - фильтры листинга возможностей (в виде строк из query string)
type OpportunityFilter struct {
	Name            string `form:"name"`
	Location        string `form:"location"`
	Category        string `form:"category"`
	OpportunityType string `form:"opportunityType"`
	ExperienceLevel string `form:"experienceLevel"`
	PaymentType     string `form:"paymentType"`
	OrganizationID  string `form:"organizationId"`
	CreatedAfter    string `form:"createdAfter"`
	CreatedBefore   string `form:"createdBefore"`
	Sort            string `form:"sort"`
}

// sortColumns - допустимые поля сортировки (API имя -> колонка)
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"location":  "location",
}

// BuildOpportunityPlan валидирует фильтр и строит план запроса.
// Все ошибки собираются в одну ValidationError (поле -> сообщение).
func BuildOpportunityPlan(page Page, f OpportunityFilter) (*Plan, error) {
	plan := newPlan(page)
	errs := map[string]string{}

	if v := strings.TrimSpace(f.Name); v != "" {
		plan.Where("title ILIKE ?", Contains(v))
	}
	if v := strings.TrimSpace(f.Location); v != "" {
		plan.Where("location ILIKE ?", Contains(v))
	}

	enumEq(plan, errs, "category", "category", f.Category, models.Category.IsValid, models.EnumValues(models.Categories))
	enumEq(plan, errs, "opportunityType", "opportunity_type", f.OpportunityType, models.OpportunityType.IsValid, models.EnumValues(models.OpportunityTypes))
	enumEq(plan, errs, "experienceLevel", "experience_level", f.ExperienceLevel, models.ExperienceLevel.IsValid, models.EnumValues(models.ExperienceLevels))
	enumEq(plan, errs, "paymentType", "payment_type", f.PaymentType, models.PaymentType.IsValid, models.EnumValues(models.PaymentTypes))

	if v := strings.TrimSpace(f.OrganizationID); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			errs["organizationId"] = "Must be a valid UUID"
		} else {
			plan.Where("organization_id = ?", v)
		}
	}

	after, okAfter := parseTime(f.CreatedAfter, "createdAfter", errs)
	before, okBefore := parseTime(f.CreatedBefore, "createdBefore", errs)
	if okAfter && okBefore && after.After(before) {
		errs["createdAfter"] = "Must not be later than createdBefore"
	} else {
		if okAfter {
			plan.Where("created_at >= ?", after)
		}
		if okBefore {
			plan.Where("created_at <= ?", before)
		}
	}

	if err := parseSort(plan, f.Sort); err != "" {
		errs["sort"] = err
	}

	if len(errs) > 0 {
		return nil, apperrors.ValidationError(errs)
	}
	return plan, nil
}

func enumEq[T ~string](plan *Plan, errs map[string]string, field, column, raw string, valid func(T) bool, allowed []string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	if !valid(T(v)) {
		errs[field] = "Must be one of: " + strings.Join(allowed, ", ")
		return
	}
	plan.Where(column+" = ?", v)
}

func parseTime(raw, field string, errs map[string]string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		errs[field] = "Must be an RFC3339 timestamp"
		return time.Time{}, false
	}
	return t, true
}

// parseSort разбирает "field[:direction]". Пустое значение -> created_at DESC.
// К любому порядку добавляется id, чтобы страницы были стабильны.
func parseSort(plan *Plan, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		plan.orderBy("created_at", true)
		plan.orderBy("id", true)
		return ""
	}

	field, dir, _ := strings.Cut(v, ":")
	column, ok := sortColumns[field]
	if !ok {
		return "Unknown sort field: " + field
	}

	desc := false
	switch strings.ToLower(dir) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return "Sort direction must be asc or desc"
	}

	plan.orderBy(column, desc)
	plan.orderBy("id", desc)
	return ""
}
