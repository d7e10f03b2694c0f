package query

import (
	"math"
	"strconv"
	"strings"

	"wematch_backend/pkg/apperrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams - сырые параметры пагинации из query string
type PageParams struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

// Page - провалидированная пагинация
type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePage разбирает page/limit. Значения вне диапазона отклоняются, а не обрезаются.
func ParsePage(params PageParams) (Page, error) {
	errs := map[string]string{}
	page := parseBound(params.Page, DefaultPage, "page", errs)
	limit := parseBound(params.Limit, DefaultLimit, "limit", errs)

	if _, bad := errs["page"]; !bad && page < 1 {
		errs["page"] = "Must be at least 1"
	}
	if _, bad := errs["limit"]; !bad {
		if limit < 1 {
			errs["limit"] = "Must be at least 1"
		} else if limit > MaxLimit {
			errs["limit"] = "Must be at most " + strconv.Itoa(MaxLimit)
		}
	}
	// смещение (page-1)*limit должно помещаться в int
	if len(errs) == 0 && page-1 > math.MaxInt/limit {
		errs["page"] = "Is too large"
	}

	if len(errs) > 0 {
		return Page{}, apperrors.ValidationError(errs)
	}
	return Page{Page: page, Limit: limit}, nil
}

func parseBound(raw string, def int, field string, errs map[string]string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = "Must be an integer"
		return 0
	}
	return v
}

// Result - страница результатов с метаданными пагинации
type Result[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

func NewResult[T any](data []T, total int64, page Page) Result[T] {
	if data == nil {
		data = []T{}
	}
	var totalPages int64
	if page.Limit > 0 {
		totalPages = (total + int64(page.Limit) - 1) / int64(page.Limit)
	}
	return Result[T]{
		Data:       data,
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: int(totalPages),
		HasMore:    int64(page.Page) < totalPages,
	}
}

// MapResult переводит страницу моделей в страницу DTO
func MapResult[T, R any](in Result[T], fn func(T) R) Result[R] {
	out := make([]R, len(in.Data))
	for i, v := range in.Data {
		out[i] = fn(v)
	}
	return Result[R]{
		Data:       out,
		Total:      in.Total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: in.TotalPages,
		HasMore:    in.HasMore,
	}
}
