package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wematch_backend/internal/access"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/query"
	"wematch_backend/internal/services/dto"
	"wematch_backend/internal/validator"
	"wematch_backend/pkg/apperrors"
	"wematch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	imageField = "image"
	// запас на остальные поля формы и границы multipart
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
	maxUpload int64
}

// NewBaseHandler - maxUpload ограничивает размер файла в multipart-запросах (байты)
func NewBaseHandler(v *validator.Validator, maxUpload int64) *BaseHandler {
	return &BaseHandler{
		validator: v,
		maxUpload: maxUpload,
	}
}

// ============================================================================
// 2. Контекст запроса
// ============================================================================

// GetDB извлекает *gorm.DB (пул или транзакцию) из gin.Context
// Этот метод ДОЛЖЕН вызываться в каждом хендлере, который обращается к сервисам
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// GetPrincipal - Principal, положенный RequireAccess. Без него маршрут собран неверно.
func (h *BaseHandler) GetPrincipal(c *gin.Context) (access.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		logger.CtxError(c.Request.Context(), "principal not found in context, route registered without RequireAccess",
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, apperrors.InternalError(errors.New("principal missing")))
		return access.Principal{}, false
	}
	return p, true
}

// ============================================================================
// 3. Методы привязки и валидации
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

// BindOpportunityForm принимает multipart/form-data (поля + файл image) или JSON.
// Возвращает nil вместо файла, если часть image отсутствует.
func (h *BaseHandler) BindOpportunityForm(c *gin.Context, obj interface{}) (*dto.ImageUpload, bool) {
	if !isMultipart(c) {
		return nil, h.BindAndValidate_JSON(c, obj)
	}

	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+multipartOverhead)

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.CtxWarn(ctx, "Multipart body too large", "limit", tooLarge.Limit, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrFileTooLarge.WithDetails(map[string]int64{"maxSize": h.maxUpload}))
			return nil, false
		}
		logger.CtxWithError(ctx, "Failed to parse multipart form", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form: "+err.Error()))
		return nil, false
	}

	if err := c.ShouldBindWith(obj, binding.FormMultipart); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form fields", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form fields: "+err.Error()))
		return nil, false
	}
	if !h.validate(c, obj) {
		return nil, false
	}

	image, err := h.readImage(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}
	return image, true
}

func (h *BaseHandler) readImage(c *gin.Context) (*dto.ImageUpload, error) {
	file, header, err := c.Request.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid image part: " + err.Error())
	}
	defer file.Close()

	// читаем на байт больше лимита, чтобы сервис увидел превышение
	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		return nil, apperrors.NewBadRequestError("Failed to read image: " + err.Error())
	}

	return &dto.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// ============================================================================
// 4. Обработчики ошибок
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Функции парсинга
// ============================================================================

// ParsePagination - page/limit из query. Значения вне диапазона дают 400.
func (h *BaseHandler) ParsePagination(c *gin.Context) (query.Page, bool) {
	var params query.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return query.Page{}, false
	}
	page, err := query.ParsePage(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return query.Page{}, false
	}
	return page, true
}

// ParseUUIDParam - path-параметр, который должен быть UUID
func (h *BaseHandler) ParseUUIDParam(c *gin.Context, key string) (string, bool) {
	value := c.Param(key)
	if _, err := uuid.Parse(value); err != nil {
		h.HandleServiceError(c, apperrors.FieldError(key, "Must be a valid UUID"))
		return "", false
	}
	return value, true
}
