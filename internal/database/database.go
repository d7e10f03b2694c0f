package database

import (
	"context"
	"fmt"
	"time"

	"wematch_backend/internal/config"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SingleOwnerConstraint - CHECK на opportunities: ровно один из organization_id / user_id
const SingleOwnerConstraint = "opportunities_single_owner"

// Open подключается к Postgres, настраивает пул и проверяет соединение
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger: logger.NewGormLogger(cfg.Server.Env),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMin) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return db, nil
}

// Models - все таблицы сервиса в порядке зависимостей
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Organization{},
		&models.Skill{},
		&models.Opportunity{},
	}
}

// Migrate выполняет AutoMigrate и добавляет ограничения, которые GORM не выражает тегами
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	if !db.Migrator().HasConstraint(&models.Opportunity{}, SingleOwnerConstraint) {
		err := db.Exec(fmt.Sprintf(
			"ALTER TABLE opportunities ADD CONSTRAINT %s CHECK ((organization_id IS NULL) <> (user_id IS NULL))",
			SingleOwnerConstraint,
		)).Error
		if err != nil {
			return fmt.Errorf("add %s: %w", SingleOwnerConstraint, err)
		}
	}

	logger.Info("AutoMigrate completed")
	return nil
}
