package routes

import (
	_ "wematch_backend/docs"
	"wematch_backend/internal/auth"
	"wematch_backend/internal/handlers"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - необязательные части роутера
type Options struct {
	// ImagesDir - каталог локального хранилища, раздается по /images. Пусто - не раздаем.
	ImagesDir string
	// Swagger включает /swagger/*any
	Swagger bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	opts Options,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	// Регистрация HTTP API v1. Класс доступа задается на каждом маршруте.
	api := ginRouter.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.OrganizationHandler.RegisterRoutes(api)
		appHandlers.OpportunityHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
	}

	if opts.ImagesDir != "" {
		ginRouter.Static("/images", opts.ImagesDir)
		logger.Info("Local images served", "path", "/images", "dir", opts.ImagesDir)
	}

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI route /swagger/index.html registered")
	}
}
