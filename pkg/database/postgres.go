package database

import (
	"fmt"

	"revdev-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens the primary gorm connection.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not configured")
	}
	return open(cfg.DatabaseURL)
}

// NewServiceConnection opens the elevated-privilege connection used by the
// project update path. Falls back to the primary DSN when no separate
// service DSN is configured.
func NewServiceConnection(cfg *config.Config, primary *gorm.DB) (*gorm.DB, error) {
	if cfg.ServiceDatabaseURL == "" || cfg.ServiceDatabaseURL == cfg.DatabaseURL {
		return primary, nil
	}
	return open(cfg.ServiceDatabaseURL)
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}
