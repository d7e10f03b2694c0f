package middleware

import (
	"strings"

	"wematch_backend/internal/access"
	"wematch_backend/internal/auth"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"
	"wematch_backend/pkg/apperrors"
	"wematch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey       = "userID"
	roleKey         = "role"
	tokenInvalidKey = "tokenInvalid"
)

// AuthMiddleware - разбирает Bearer-токен, если он есть. Без токена запрос идет дальше анонимно:
// решение о доступе принимает RequireAccess.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			c.Set(tokenInvalidKey, true)
			c.Next()
			return
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(tokenStr))
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "Rejected bearer token", "error", err)
			c.Set(tokenInvalidKey, true)
			c.Next()
			return
		}

		// Сохраняем claims в контекст
		c.Set(userIDKey, claims.UserID())
		c.Set(roleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID()))
		c.Next()
	}
}

// RequireAccess - проверяет класс маршрута по таблице доступа и кладет Principal в контекст
func RequireAccess(class access.RouteClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		if class != access.ClassPublic && c.GetBool(tokenInvalidKey) {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		role := GetRole(c)
		scope, err := access.Decide(role, class)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Set(string(contextkeys.PrincipalContextKey), access.Principal{
			ID:    GetUserID(c),
			Role:  role,
			Scope: scope,
		})
		c.Next()
	}
}

// OwnRecordsOnly ставится после RequireAccess: даже SUPER_ADMIN видит только свои записи
func OwnRecordsOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := GetPrincipal(c); ok {
			c.Set(string(contextkeys.PrincipalContextKey), p.Owned())
		}
		c.Next()
	}
}

// GetPrincipal извлекает Principal, установленный RequireAccess
func GetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(string(contextkeys.PrincipalContextKey))
	if !exists {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetRole - роль из токена или Anonymous
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(roleKey)
	if !exists {
		return access.Anonymous
	}
	role, _ := roleVal.(models.UserRole)
	return role
}
