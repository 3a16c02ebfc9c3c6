package migration

import (
	"recipe-catalog/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates or updates every table. All models go through a single
// AutoMigrate call so that has-many constraints (cascade from recipes,
// restrict from images and ingredients) are known before tables are created.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Image{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.Step{},
		&entities.RecipeIngredient{},
		&entities.RecipeRate{},
	); err != nil {
		log.Errorf("Error migrating database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
