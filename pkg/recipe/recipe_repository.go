package recipe

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		ListRecipes(ctx context.Context, filter ListFilter, page, limit int) ([]entities.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []string) (*entities.Recipe, error)
		EditRecipe(ctx context.Context, id uint, recipe *entities.Recipe, ingredients []string) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		RateRecipe(ctx context.Context, rate *entities.RecipeRate) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) ListRecipes(ctx context.Context, filter ListFilter, page, limit int) ([]entities.Recipe, int64, error) {
	var recipes []entities.Recipe
	var count int64

	offset := (page - 1) * limit

	query := BuildListQuery(r.db.WithContext(ctx), filter)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := WithIngredients(query).Offset(offset).Limit(limit).Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	return loadRecipe(r.db.WithContext(ctx), id)
}

// CreateRecipe persists recipe with its steps and one association per
// ingredient name in a single transaction. Only ingredient names unknown to
// the store are inserted.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, ingredients []string) (*entities.Recipe, error) {
	steps := recipe.Steps

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredientIDs, err := resolveIngredients(tx, ingredients)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return translateImageRefError(err)
		}

		return writeRecipeGraph(tx, recipe.ID, steps, ingredientIDs)
	})
	if err != nil {
		return nil, err
	}

	return loadRecipe(r.db.WithContext(ctx), recipe.ID)
}

// EditRecipe overwrites the recipe fields and replaces its whole step list and
// ingredient association list. Ingredient rows are never deleted.
func (r *recipeRepository) EditRecipe(ctx context.Context, id uint, recipe *entities.Recipe, ingredients []string) (*entities.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Recipe
		if err := tx.Select("id").First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		ingredientIDs, err := resolveIngredients(tx, ingredients)
		if err != nil {
			return err
		}

		if err := tx.Model(&current).Updates(map[string]interface{}{
			"name":        recipe.Name,
			"description": recipe.Description,
			"image_id":    recipe.ImageID,
		}).Error; err != nil {
			return translateImageRefError(err)
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Step{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}

		return writeRecipeGraph(tx, id, recipe.Steps, ingredientIDs)
	})
	if err != nil {
		return nil, err
	}

	return loadRecipe(r.db.WithContext(ctx), id)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return translateDeleteResult(r.db.WithContext(ctx).Delete(&entities.Recipe{}, id))
}

// RateRecipe always inserts and lets the store constraints reject a missing
// recipe or a second rating by the same user.
func (r *recipeRepository) RateRecipe(ctx context.Context, rate *entities.RecipeRate) error {
	return translateRateError(r.db.WithContext(ctx).Create(rate).Error)
}

func loadRecipe(db *gorm.DB, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order")
		}).
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// resolveIngredients reconciles names against the store, inserts the missing
// ones and returns the id of every requested ingredient.
func resolveIngredients(tx *gorm.DB, names []string) ([]uint, error) {
	existing, fresh, err := Reconcile(tx, names)
	if err != nil {
		return nil, err
	}

	if len(fresh) > 0 {
		if err := tx.Create(&fresh).Error; err != nil {
			return nil, translateIngredientInsertError(err)
		}
	}

	ids := make([]uint, 0, len(existing)+len(fresh))
	for _, ing := range existing {
		ids = append(ids, ing.ID)
	}
	for _, ing := range fresh {
		ids = append(ids, ing.ID)
	}
	return ids, nil
}

func writeRecipeGraph(tx *gorm.DB, recipeID uint, steps []entities.Step, ingredientIDs []uint) error {
	if len(steps) > 0 {
		rows := make([]entities.Step, len(steps))
		for i, s := range steps {
			rows[i] = entities.Step{
				RecipeID:    recipeID,
				Order:       s.Order,
				Description: s.Description,
				Duration:    s.Duration,
				ImageID:     s.ImageID,
			}
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return translateImageRefError(err)
		}
	}

	if len(ingredientIDs) > 0 {
		rows := make([]entities.RecipeIngredient, len(ingredientIDs))
		for i, id := range ingredientIDs {
			rows[i] = entities.RecipeIngredient{RecipeID: recipeID, IngredientID: id}
		}
		if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}
