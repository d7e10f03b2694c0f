package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wematch_backend/internal/auth"
	"wematch_backend/internal/config"
	"wematch_backend/internal/database"
	"wematch_backend/internal/handlers"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/middleware"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/routes"
	"wematch_backend/internal/services"
	"wematch_backend/internal/storage"
	"wematch_backend/internal/validator"
	"wematch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(gormDB); err != nil {
			logger.Fatal("Migration failed", "error", err)
		}
		logger.Info("Database schema migrated")
	}

	ginRouter, container, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg, container.UserService); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server exited")
}

// SetupRouter собирает хранилище, сервисы, хэндлеры и gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", storageInstance.Name())

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, storageInstance, tokens)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	opts := routes.Options{Swagger: true}
	if local, ok := storageInstance.(*storage.LocalStorage); ok {
		opts.ImagesDir = local.BasePath()
	}
	routes.RegisterRoutes(ginRouter, appHandlers, tokens, opts)

	return ginRouter, serviceContainer, nil
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, tokens *auth.TokenManager) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	organizationRepo := repositories.NewOrganizationRepository()
	skillRepo := repositories.NewSkillRepository()
	opportunityRepo := repositories.NewOpportunityRepository()

	// --- Инициализация сервисов ---
	imageService := services.NewImageService(storageInstance, services.ImageConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
		Quality:      cfg.Upload.ImageQuality,
		MaxDimension: cfg.Upload.MaxDimension,
		MaxPixels:    cfg.Upload.MaxPixels,
	})
	logger.Debug("Image limits configured",
		"max_size", cfg.Upload.MaxSize,
		"max_dimension", cfg.Upload.MaxDimension,
		"max_pixels", cfg.Upload.MaxPixels,
	)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, tokens),
		UserService:         services.NewUserService(userRepo),
		OrganizationService: services.NewOrganizationService(organizationRepo),
		SkillService:        services.NewSkillService(skillRepo),
		OpportunityService:  services.NewOpportunityService(opportunityRepo, organizationRepo, imageService),
		ImageService:        imageService,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, cfg.Upload.MaxSize)

	return &handlers.AppHandlers{
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		OrganizationHandler: handlers.NewOrganizationHandler(baseHandler, container.OrganizationService),
		OpportunityHandler:  handlers.NewOpportunityHandler(baseHandler, container.OpportunityService),
		SkillHandler:        handlers.NewSkillHandler(baseHandler, container.SkillService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого SUPER_ADMIN, если он задан в конфиге и еще не существует
func seedFirstAdmin(db *gorm.DB, cfg *config.Config, userService services.UserService) error {
	admin := cfg.FirstAdmin
	if admin.Email == "" || admin.Password == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	created, err := userService.EnsureAdmin(context.Background(), db, admin.Email, admin.Password, admin.FirstName, admin.LastName)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Created first admin user", "email", admin.Email)
	} else {
		logger.Info("Admin user already exists. Skipping creation.", "email", admin.Email)
	}
	return nil
}
