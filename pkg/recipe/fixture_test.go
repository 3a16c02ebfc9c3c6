package recipe

import (
	"context"
	"testing"

	"recipe-catalog/entities"
	"recipe-catalog/internal/utils/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	repo  RecipeRepository
	image uuid.UUID
	ids   map[string]uint
}

type fixtureRecipe struct {
	name        string
	durations   []int64
	rates       []int
	ingredients []string
}

// Known catalog:
//
//	short:  60s,  rating 5,   {egg, flour, milk}
//	medium: 300s, unrated,    {egg, sugar}
//	long:   600s, rating 2.5, {flour, water}
var fixtureRecipes = []fixtureRecipe{
	{name: "short", durations: []int64{60}, rates: []int{5}, ingredients: []string{"egg", "flour", "milk"}},
	{name: "medium", durations: []int64{100, 200}, ingredients: []string{"egg", "sugar"}},
	{name: "long", durations: []int64{200, 200, 200}, rates: []int{2, 3}, ingredients: []string{"flour", "water"}},
}

func newEmptyFixture(t *testing.T) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	return &fixture{
		db:    db,
		repo:  NewRecipeRepository(db),
		image: dbtest.SeedImage(t, db),
		ids:   make(map[string]uint),
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := newEmptyFixture(t)
	for _, fr := range fixtureRecipes {
		created := f.create(t, fr.name, fr.durations, fr.ingredients)
		for _, rate := range fr.rates {
			err := f.repo.RateRecipe(context.Background(), &entities.RecipeRate{
				UserID:   dbtest.SeedUser(t, f.db),
				RecipeID: created.ID,
				Rate:     rate,
			})
			require.NoError(t, err)
		}
	}
	return f
}

func (f *fixture) steps(durations []int64) []entities.Step {
	steps := make([]entities.Step, len(durations))
	for i, d := range durations {
		steps[i] = entities.Step{
			Order:       i + 1,
			Description: "step",
			Duration:    d,
			ImageID:     f.image,
		}
	}
	return steps
}

func (f *fixture) create(t *testing.T, name string, durations []int64, ingredients []string) *entities.Recipe {
	t.Helper()

	created, err := f.repo.CreateRecipe(context.Background(), &entities.Recipe{
		Name:        name,
		Description: name + " recipe",
		ImageID:     f.image,
		Steps:       f.steps(durations),
	}, ingredients)
	require.NoError(t, err)

	f.ids[name] = created.ID
	return created
}

func (f *fixture) names(ids []uint) []string {
	byID := make(map[uint]string, len(f.ids))
	for name, id := range f.ids {
		byID[id] = name
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}
