package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:127;not null" json:"name"`
	Description string    `gorm:"size:255;not null" json:"description"`
	ImageID     uuid.UUID `gorm:"type:uuid;not null" json:"image_id"`

	Image       *Image             `gorm:"foreignKey:ImageID;constraint:OnDelete:RESTRICT" json:"-"`
	Steps       []Step             `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Rates       []RecipeRate       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`

	// Derived per query from steps and recipe_rates, never stored.
	TotalDuration int64   `gorm:"->;-:migration" json:"total_duration"` // seconds
	Rating        float64 `gorm:"->;-:migration" json:"rating"`
	Timestamp
}

// IngredientNames returns the names of the attached ingredients. The
// association rows must have been loaded with their Ingredient.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, assoc := range r.Ingredients {
		if assoc.Ingredient != nil {
			names = append(names, assoc.Ingredient.Name)
		}
	}
	return names
}

type Step struct {
	RecipeID    uint      `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	Order       int       `gorm:"column:step_order;primaryKey;autoIncrement:false" json:"order"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Duration    int64     `gorm:"not null" json:"duration"` // seconds
	ImageID     uuid.UUID `gorm:"type:uuid;not null" json:"image_id"`

	Image *Image `gorm:"foreignKey:ImageID;constraint:OnDelete:RESTRICT" json:"-"`
}

// Ingredient is shared between recipes and only ever created, never deleted
// by recipe writes.
type Ingredient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:127;not null;uniqueIndex" json:"name"`
}

type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"ingredient,omitempty"`
}

type RecipeRate struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID uint      `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	Rate     int       `gorm:"not null;check:rate >= 1 AND rate <= 5" json:"rate"`
}
