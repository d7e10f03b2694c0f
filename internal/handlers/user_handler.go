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

// UserHandler - администрирование аккаунтов
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/users")
	admin.Use(middleware.RequireAccess(access.ClassAdminOnly))
	{
		admin.GET("", h.ListUsers)
		admin.GET("/:id", h.GetUser)
		admin.PATCH("/:id/role", h.UpdateRole)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Description Пагинированный список с фильтром по роли и поиском по email/имени
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Страница" default(1)
// @Param limit query int false "Размер страницы (1-100)" default(10)
// @Param role query string false "Роль" Enums(SUPER_ADMIN, ORGANIZATION, USER)
// @Param search query string false "Подстрока email или имени"
// @Success 200 {object} query.Result[dto.UserResponse]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}
	var filter query.UserFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	db := h.GetDB(c)

	result, err := h.userService.List(c.Request.Context(), db, page, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUser godoc
// @Summary Пользователь по ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.Get(c.Request.Context(), db, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateRole godoc
// @Summary Сменить роль пользователя
// @Description Админ не может изменить собственную роль
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateRoleRequest true "Новая роль"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateRole(c.Request.Context(), db, p, id, req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Description Жесткое удаление. Нельзя удалить себя или пользователя, у которого остались записи.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "ID пользователя"
// @Success 204
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/v1/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}
	id, ok := h.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.Delete(c.Request.Context(), db, p, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
