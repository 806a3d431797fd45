package database

import (
	"fmt"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// migrateModels is the registry of every persisted model, ordered so that
// parents are created before their children.
func migrateModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	}
}

// Migrate creates or updates the schema for all registered models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(migrateModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
