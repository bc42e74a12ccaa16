package database

import (
	"gorm.io/gorm"

	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/model"
)

// Migrate creates or updates the two application tables. The schema is small
// enough that GORM's auto-migration covers it; there is no versioned
// migration history.
func Migrate(db *gorm.DB, logger coreport.Logger) error {
	logger.Info("Running database migrations", nil)

	if err := db.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Database migrations completed", nil)
	return nil
}
