package handlers

import (
	"net/http"

	"wematch_backend/internal/access"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/services"
	"wematch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации и /users/me
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.Use(middleware.RequireAccess(access.ClassPublic))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	users := rg.Group("/users")
	{
		users.GET("/me", middleware.RequireAccess(access.ClassAuthenticated), h.Me)
	}
}

// Register godoc
// @Summary Регистрация
// @Description Создает аккаунт с ролью USER или ORGANIZATION
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 409 {object} apperrors.ErrorResponse "Email уже занят"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "User registered", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Вход
// @Description Проверяет email и пароль и выдает access-токен
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} apperrors.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} apperrors.ErrorResponse "Неверный email или пароль"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	resp, err := h.authService.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Me(c.Request.Context(), db, p)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
