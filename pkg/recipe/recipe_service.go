package recipe

import (
	"context"
	"errors"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/metrics"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20

	imageURLPrefix = "/api/v1/images/"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeDetail, error)
		EditRecipe(ctx context.Context, id uint, req domain.RecipeRequest) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id uint) error
		RateRecipe(ctx context.Context, id uint, req domain.RateRecipeRequest, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		maxPageSize      int
	}
)

func NewRecipeService(recipeRepository RecipeRepository, maxPageSize int) RecipeService {
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		maxPageSize:      maxPageSize,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	order, err := ParseOrder(req.Order)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	if (req.DurationLTE != nil && *req.DurationLTE < 0) || (req.DurationGTE != nil && *req.DurationGTE < 0) {
		return domain.RecipeListResponse{}, domain.ErrInvalidDuration
	}

	page, limit := s.pageBounds(req.Page, req.Limit)

	filter := ListFilter{
		DurationLTE: req.DurationLTE,
		DurationGTE: req.DurationGTE,
		RatingLTE:   req.RatingLTE,
		RatingGTE:   req.RatingGTE,
		Ingredients: req.Ingredients,
		Order:       order,
	}

	start := time.Now()
	recipes, count, err := s.recipeRepository.ListRecipes(ctx, filter, page, limit)
	metrics.ObserveListQuery(time.Since(start))
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items := make([]domain.RecipeListItem, 0, len(recipes))
	for i := range recipes {
		items = append(items, domain.RecipeListItem{
			ID:          recipes[i].ID,
			Name:        recipes[i].Name,
			Description: recipes[i].Description,
			Ingredients: recipes[i].IngredientNames(),
			Duration:    recipes[i].TotalDuration,
			Rating:      recipes[i].Rating,
		})
	}

	return domain.RecipeListResponse{
		Items:      items,
		Pagination: domain.NewPagination(page, limit, count),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return toRecipeDetail(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeDetail, error) {
	recipe, err := newRecipeEntity(req)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe, req.Ingredients)
	recordWrite("create", err)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	log.Infof("recipe %d created with %d steps", created.ID, len(created.Steps))
	return toRecipeDetail(created), nil
}

func (s *recipeService) EditRecipe(ctx context.Context, id uint, req domain.RecipeRequest) (domain.RecipeDetail, error) {
	recipe, err := newRecipeEntity(req)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	edited, err := s.recipeRepository.EditRecipe(ctx, id, recipe, req.Ingredients)
	recordWrite("edit", err)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	return toRecipeDetail(edited), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	err := s.recipeRepository.DeleteRecipe(ctx, id)
	recordWrite("delete", err)
	return err
}

func (s *recipeService) RateRecipe(ctx context.Context, id uint, req domain.RateRecipeRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if req.Rate < 1 || req.Rate > 5 {
		return domain.ErrInvalidRating
	}

	err = s.recipeRepository.RateRecipe(ctx, &entities.RecipeRate{
		UserID:   userUUID,
		RecipeID: id,
		Rate:     req.Rate,
	})
	result := resultOf(err)
	metrics.RecordRating(result)
	if err != nil && result == metrics.ResultError {
		log.Errorf("rating recipe %d failed: %v", id, err)
	}
	return err
}

func (s *recipeService) pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return page, limit
}

func newRecipeEntity(req domain.RecipeRequest) (*entities.Recipe, error) {
	imageID, err := uuid.Parse(req.ImageID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	steps := make([]entities.Step, 0, len(req.Steps))
	for _, st := range req.Steps {
		stepImageID, err := uuid.Parse(st.ImageID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if st.Duration <= 0 {
			return nil, domain.ErrInvalidDuration
		}
		steps = append(steps, entities.Step{
			Order:       st.Order,
			Description: st.Description,
			Duration:    st.Duration,
			ImageID:     stepImageID,
		})
	}

	return &entities.Recipe{
		Name:        req.Name,
		Description: req.Description,
		ImageID:     imageID,
		Steps:       steps,
	}, nil
}

func toRecipeDetail(recipe *entities.Recipe) domain.RecipeDetail {
	steps := make([]domain.RecipeStep, 0, len(recipe.Steps))
	for _, st := range recipe.Steps {
		steps = append(steps, domain.RecipeStep{
			Order:       st.Order,
			Description: st.Description,
			Duration:    st.Duration,
			ImageURL:    imageURL(st.ImageID),
		})
	}

	return domain.RecipeDetail{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		ImageURL:    imageURL(recipe.ImageID),
		Ingredients: recipe.IngredientNames(),
		Steps:       steps,
	}
}

func imageURL(id uuid.UUID) string {
	return imageURLPrefix + id.String()
}

func recordWrite(operation string, err error) {
	result := resultOf(err)
	metrics.RecordWrite(operation, result)

	switch result {
	case metrics.ResultConflict:
		if errors.Is(err, domain.ErrIngredientConflict) {
			metrics.RecordIngredientConflict()
			log.Warnf("recipe %s lost an ingredient name race: %v", operation, err)
		}
	case metrics.ResultError:
		log.Errorf("recipe %s failed: %v", operation, err)
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrIngredientConflict), errors.Is(err, domain.ErrAlreadyRated):
		return metrics.ResultConflict
	}
	return metrics.ResultError
}
