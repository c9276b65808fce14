package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pmtrack/backend/internal/config"
	"github.com/pmtrack/backend/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.RefreshToken{},
		&models.Project{},
		&models.Milestone{},
		&models.ProjectAttachment{},
		&models.AuditLog{},
	)
}

// SeedRoles creates the role catalogue if missing.
func SeedRoles() error {
	for _, name := range []string{models.RoleAdmin, models.RoleProjectManager, models.RoleUser} {
		var role models.Role
		err := DB.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		if err := DB.Create(&models.Role{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
		slog.Info("role seeded", "role", name)
	}
	return nil
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
