package handlers

import (
	"net/http"

	"wematch_backend/internal/access"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/services"
	"wematch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	skills := rg.Group("/skills")
	{
		skills.GET("/search", middleware.RequireAccess(access.ClassAuthenticated), h.SearchUsersBySkill)

		personal := middleware.RequireAccess(access.ClassPersonal)
		skills.POST("", personal, h.CreateSkill)
		skills.GET("", personal, h.ListMySkills)
		skills.GET("/:id", personal, h.GetSkill)
		skills.PATCH("/:id", personal, h.UpdateSkill)
		skills.DELETE("/:id", personal, h.DeleteSkill)
	}
}

// CreateSkill godoc
// @Summary Добавить навык
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSkillRequest true "Навык"
// @Success 201 {object} dto.SkillResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/v1/skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	skill, err := h.skillService.Create(c.Request.Context(), db, p, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// ListMySkills godoc
// @Summary Мои навыки
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SkillResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/v1/skills [get]
func (h *SkillHandler) ListMySkills(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	skills, err := h.skillService.ListMine(c.Request.Context(), db, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// SearchUsersBySkill godoc
// @Summary Поиск пользователей по навыку
// @Description Подстрока названия навыка без учета регистра
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param name query string true "Название навыка"
// @Success 200 {array} dto.SkillMatchResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/skills/search [get]
func (h *SkillHandler) SearchUsersBySkill(c *gin.Context) {
	db := h.GetDB(c)

	matches, err := h.skillService.SearchUsersBySkill(c.Request.Context(), db, c.Query("name"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetSkill godoc
// @Summary Навык по ID
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID навыка"
// @Success 200 {object} dto.SkillResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/skills/{id} [get]
func (h *SkillHandler) GetSkill(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	skill, err := h.skillService.Get(c.Request.Context(), db, p, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// UpdateSkill godoc
// @Summary Обновить навык
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID навыка"
// @Param request body dto.UpdateSkillRequest true "Изменяемые поля"
// @Success 200 {object} dto.SkillResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/skills/{id} [patch]
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSkillRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	skill, err := h.skillService.Update(c.Request.Context(), db, p, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// DeleteSkill godoc
// @Summary Удалить навык
// @Tags skills
// @Security BearerAuth
// @Param id path string true "ID навыка"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.skillService.Delete(c.Request.Context(), db, p, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
