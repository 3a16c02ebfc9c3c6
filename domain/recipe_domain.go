package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessEditRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessRateRecipe      = "recipe rated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedEditRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedRateRecipe      = "failed to rate recipe"

	ErrRecipeNotFound     = fmt.Errorf("recipe %w", ErrNotFound)
	ErrInvalidOrderToken  = errors.New("invalid order token")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidRecipeID    = errors.New("invalid recipe id")
	ErrAlreadyRated       = errors.New("recipe already rated by this user")
	ErrIngredientConflict = errors.New("ingredient name was created concurrently, retry the request")
)

type (
	RecipeStepRequest struct {
		Order       int    `json:"order" validate:"required,min=1"`
		Description string `json:"description" validate:"required,max=255"`
		// Duration in seconds.
		Duration int64  `json:"duration" validate:"required,min=1"`
		ImageID  string `json:"image_id" validate:"required,uuid"`
	}

	// RecipeRequest is the full recipe payload used by both create and edit.
	RecipeRequest struct {
		Name        string              `json:"name" validate:"required,max=127"`
		Description string              `json:"description" validate:"required,max=255"`
		ImageID     string              `json:"image_id" validate:"required,uuid"`
		Ingredients []string            `json:"ingredients" validate:"required,min=1,dive,required,max=127"`
		Steps       []RecipeStepRequest `json:"steps" validate:"required,min=1,unique=Order,dive"`
	}

	RateRecipeRequest struct {
		Rate int `json:"rate" validate:"required,min=1,max=5"`
	}

	RecipeListRequest struct {
		DurationLTE *time.Duration
		DurationGTE *time.Duration
		RatingLTE   *float64
		RatingGTE   *float64
		Ingredients []string
		Order       string
		Page        int
		Limit       int
	}

	RecipeListItem struct {
		ID          uint     `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Ingredients []string `json:"ingredients"`
		// Duration in seconds.
		Duration int64   `json:"duration"`
		Rating   float64 `json:"rating"`
	}

	RecipeListResponse struct {
		Items      []RecipeListItem `json:"items"`
		Pagination Pagination       `json:"pagination"`
	}

	RecipeStep struct {
		Order       int    `json:"order"`
		Description string `json:"description"`
		Duration    int64  `json:"duration"`
		ImageURL    string `json:"image_url"`
	}

	RecipeDetail struct {
		ID          uint         `json:"id"`
		Name        string       `json:"name"`
		Description string       `json:"description"`
		ImageURL    string       `json:"image_url"`
		Ingredients []string     `json:"ingredients"`
		Steps       []RecipeStep `json:"steps"`
	}
)
