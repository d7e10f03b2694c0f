package handlers

import (
	"net/http"

	"wematch_backend/internal/access"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/query"
	"wematch_backend/internal/services"
	"wematch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	*BaseHandler
	organizationService services.OrganizationService
}

func NewOrganizationHandler(base *BaseHandler, organizationService services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler:         base,
		organizationService: organizationService,
	}
}

func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orgs := rg.Group("/organizations")
	{
		orgs.GET("", middleware.RequireAccess(access.ClassPublic), h.ListOrganizations)
		orgs.GET("/:id", middleware.RequireAccess(access.ClassPublic), h.GetOrganization)
		orgs.POST("", middleware.RequireAccess(access.ClassManaged), h.CreateOrganization)
		orgs.PATCH("/:id", middleware.RequireAccess(access.ClassManaged), h.UpdateOrganization)
		orgs.DELETE("/:id", middleware.RequireAccess(access.ClassAdminOnly), h.DeleteOrganization)
	}
}

// CreateOrganization godoc
// @Summary Создать организацию
// @Description Аккаунт может управлять только одной организацией
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrganizationRequest true "Данные организации"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Организация уже создана"
// @Router /api/v1/organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateOrganizationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	org, err := h.organizationService.Create(c.Request.Context(), db, p, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations godoc
// @Summary Список организаций
// @Tags organizations
// @Produce json
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (1-100)" default(10)
// @Param name query string false "Подстрока названия"
// @Param location query string false "Подстрока местоположения"
// @Success 200 {object} query.Result[dto.OrganizationResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}
	var filter query.OrganizationFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	db := h.GetDB(c)

	result, err := h.organizationService.List(c.Request.Context(), db, page, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOrganization godoc
// @Summary Организация по ID
// @Tags organizations
// @Produce json
// @Param id path string true "ID организации"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	org, err := h.organizationService.Get(c.Request.Context(), db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization godoc
// @Summary Обновить организацию
// @Description ORGANIZATION - только свою, SUPER_ADMIN - любую
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID организации"
// @Param request body dto.UpdateOrganizationRequest true "Изменяемые поля"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/organizations/{id} [patch]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrganizationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	org, err := h.organizationService.Update(c.Request.Context(), db, p, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization godoc
// @Summary Удалить организацию
// @Description Только SUPER_ADMIN. Организацию с возможностями удалить нельзя (409).
// @Tags organizations
// @Security BearerAuth
// @Param id path string true "ID организации"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/v1/organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.organizationService.Delete(c.Request.Context(), db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
