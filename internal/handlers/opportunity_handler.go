package handlers

import (
	"context"
	"net/http"

	"wematch_backend/internal/access"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/query"
	"wematch_backend/internal/services"
	"wematch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OpportunityHandler struct {
	*BaseHandler
	opportunityService services.OpportunityService
}

func NewOpportunityHandler(base *BaseHandler, opportunityService services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		BaseHandler:        base,
		opportunityService: opportunityService,
	}
}

func (h *OpportunityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	opps := rg.Group("/opportunities")
	{
		// --- Публичные ---
		opps.GET("/all", middleware.RequireAccess(access.ClassPublic), h.ListAll)
		opps.GET("/:id", middleware.RequireAccess(access.ClassPublic), h.GetOpportunity)

		// --- От имени организации ---
		adminOnly := middleware.RequireAccess(access.ClassAdminOnly)
		opps.POST("", adminOnly, h.CreateForOrganization)
		opps.GET("", adminOnly, h.ListForOrganization)
		opps.PATCH("/:id", adminOnly, h.UpdateOpportunity)
		opps.DELETE("/:id", adminOnly, h.DeleteOpportunity)

		// --- От имени пользователя ---
		byUser := opps.Group("/byUser")
		byUser.Use(middleware.RequireAccess(access.ClassManaged), middleware.OwnRecordsOnly())
		{
			byUser.POST("", h.CreateByUser)
			byUser.GET("", h.ListByUser)
			byUser.GET("/:id", h.GetOpportunity)
			byUser.PATCH("/:id", h.UpdateOpportunity)
			byUser.DELETE("/:id", h.DeleteOpportunity)
		}
	}
}

// CreateForOrganization godoc
// @Summary Создать возможность от имени организации
// @Description Владелец - организация, которой управляет вызывающий. Изображение - необязательная часть image.
// @Tags opportunities
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание"
// @Param category formData string true "Категория" Enums(TECH, BUSINESS, DESIGN, EDUCATION, HEALTHCARE, NONPROFIT, MARKETING, OTHER)
// @Param opportunityType formData string true "Тип" Enums(JOB, INTERNSHIP, VOLUNTEER, FREELANCE, PROJECT)
// @Param experienceLevel formData string true "Уровень" Enums(ENTRY, JUNIOR, MID, SENIOR, EXPERT)
// @Param paymentType formData string true "Оплата" Enums(PAID, UNPAID, STIPEND)
// @Param location formData string false "Местоположение"
// @Param image formData file false "Изображение (jpeg, png, webp)"
// @Success 201 {object} dto.OpportunityResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Организация не найдена"
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities [post]
func (h *OpportunityHandler) CreateForOrganization(c *gin.Context) {
	h.create(c, h.opportunityService.CreateForOrganization)
}

// CreateByUser godoc
// @Summary Создать возможность от своего имени
// @Tags opportunities
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание"
// @Param category formData string true "Категория"
// @Param opportunityType formData string true "Тип"
// @Param experienceLevel formData string true "Уровень"
// @Param paymentType formData string true "Оплата"
// @Param location formData string false "Местоположение"
// @Param image formData file false "Изображение (jpeg, png, webp)"
// @Success 201 {object} dto.OpportunityResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/byUser [post]
func (h *OpportunityHandler) CreateByUser(c *gin.Context) {
	h.create(c, h.opportunityService.CreateByUser)
}

type createFunc func(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error)

func (h *OpportunityHandler) create(c *gin.Context, fn createFunc) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateOpportunityRequest
	image, ok := h.BindOpportunityForm(c, &req)
	if !ok {
		return
	}

	db := h.GetDB(c)

	opp, err := fn(c.Request.Context(), db, p, &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opp)
}

// ListAll godoc
// @Summary Каталог возможностей
// @Description Пагинация, фильтры и сортировка. Фильтры объединяются по И.
// @Tags opportunities
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (1-100)" default(10)
// @Param name query string false "Подстрока заголовка"
// @Param location query string false "Подстрока местоположения"
// @Param category query string false "Категория"
// @Param opportunityType query string false "Тип"
// @Param experienceLevel query string false "Уровень"
// @Param paymentType query string false "Оплата"
// @Param organizationId query string false "ID организации"
// @Param createdAfter query string false "RFC3339, включительно"
// @Param createdBefore query string false "RFC3339, включительно"
// @Param sort query string false "поле[:asc|desc], поля createdAt, updatedAt, title, location"
// @Success 200 {object} query.Result[dto.OpportunityResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/all [get]
func (h *OpportunityHandler) ListAll(c *gin.Context) {
	page, filter, ok := h.bindListing(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.opportunityService.ListPublic(c.Request.Context(), db, page, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListForOrganization godoc
// @Summary Возможности своей организации
// @Description Фильтр organizationId всегда заменяется организацией вызывающего
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (1-100)" default(10)
// @Success 200 {object} query.Result[dto.OpportunityResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Организация не найдена"
// @Router /api/v1/opportunities [get]
func (h *OpportunityHandler) ListForOrganization(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	page, filter, ok := h.bindListing(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.opportunityService.ListForOrganization(c.Request.Context(), db, p, page, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByUser godoc
// @Summary Свои возможности
// @Tags opportunities
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (1-100)" default(10)
// @Success 200 {object} query.Result[dto.OpportunityResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/byUser [get]
func (h *OpportunityHandler) ListByUser(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	page, filter, ok := h.bindListing(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	result, err := h.opportunityService.ListByUser(c.Request.Context(), db, p, page, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OpportunityHandler) bindListing(c *gin.Context) (query.Page, query.OpportunityFilter, bool) {
	var filter query.OpportunityFilter
	page, ok := h.ParsePagination(c)
	if !ok {
		return page, filter, false
	}
	if !h.BindAndValidate_Query(c, &filter) {
		return page, filter, false
	}
	return page, filter, true
}

// GetOpportunity godoc
// @Summary Возможность по ID
// @Description Публично - любая запись; через /byUser - только своя (чужая дает 404)
// @Tags opportunities
// @Produce json
// @Param id path string true "ID возможности"
// @Success 200 {object} dto.OpportunityResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/{id} [get]
// @Router /api/v1/opportunities/byUser/{id} [get]
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	opp, err := h.opportunityService.Get(c.Request.Context(), db, p, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp)
}

// UpdateOpportunity godoc
// @Summary Обновить возможность
// @Description Частичное обновление. Новое изображение заменяет старое.
// @Tags opportunities
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID возможности"
// @Param title formData string false "Заголовок"
// @Param description formData string false "Описание"
// @Param category formData string false "Категория"
// @Param opportunityType formData string false "Тип"
// @Param experienceLevel formData string false "Уровень"
// @Param paymentType formData string false "Оплата"
// @Param location formData string false "Местоположение"
// @Param image formData file false "Новое изображение"
// @Success 200 {object} dto.OpportunityResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/{id} [patch]
// @Router /api/v1/opportunities/byUser/{id} [patch]
func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOpportunityRequest
	image, ok := h.BindOpportunityForm(c, &req)
	if !ok {
		return
	}

	db := h.GetDB(c)

	opp, err := h.opportunityService.Update(c.Request.Context(), db, p, id, &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp)
}

// DeleteOpportunity godoc
// @Summary Удалить возможность
// @Tags opportunities
// @Security BearerAuth
// @Param id path string true "ID возможности"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/opportunities/{id} [delete]
// @Router /api/v1/opportunities/byUser/{id} [delete]
func (h *OpportunityHandler) DeleteOpportunity(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.opportunityService.Delete(c.Request.Context(), db, p, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
