package recipe

import (
	"context"
	"fmt"
	"testing"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationPtr(d time.Duration) *time.Duration { return &d }
func floatPtr(v float64) *float64                { return &v }

func (f *fixture) list(t *testing.T, filter ListFilter) []entities.Recipe {
	t.Helper()

	var recipes []entities.Recipe
	require.NoError(t, WithIngredients(BuildListQuery(f.db, filter)).Find(&recipes).Error)
	return recipes
}

func recipeNames(recipes []entities.Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		token string
		want  Order
	}{
		{"", OrderNone},
		{"duration", OrderDurationAsc},
		{"-duration", OrderDurationDesc},
		{"rating", OrderRatingAsc},
		{"-rating", OrderRatingDesc},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseOrder(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, got.String())
		})
	}

	for _, bad := range []string{"name", "+duration", "--rating", "Duration", "id"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseOrder(bad)
			assert.ErrorIs(t, err, domain.ErrInvalidOrderToken)
		})
	}
}

func TestBuildListQuery_DerivedColumns(t *testing.T) {
	f := newFixture(t)

	recipes := f.list(t, ListFilter{Order: OrderDurationAsc})
	require.Len(t, recipes, 3)

	got := map[string][2]float64{}
	for _, r := range recipes {
		got[r.Name] = [2]float64{float64(r.TotalDuration), r.Rating}
	}
	assert.Equal(t, map[string][2]float64{
		"short":  {60, 5},
		"medium": {300, 0},
		"long":   {600, 2.5},
	}, got)
}

func TestBuildListQuery_NumericFilterCombinations(t *testing.T) {
	f := newFixture(t)

	type row struct {
		name     string
		duration int64
		rating   float64
	}
	catalog := []row{{"short", 60, 5}, {"medium", 300, 0}, {"long", 600, 2.5}}

	const threshold = 300 * time.Second
	const ratingThreshold = 2.5

	predicates := []struct {
		name  string
		apply func(*ListFilter)
		match func(row) bool
	}{
		{"duration<=300s", func(l *ListFilter) { l.DurationLTE = durationPtr(threshold) }, func(r row) bool { return r.duration <= 300 }},
		{"duration>=300s", func(l *ListFilter) { l.DurationGTE = durationPtr(threshold) }, func(r row) bool { return r.duration >= 300 }},
		{"rating<=2.5", func(l *ListFilter) { l.RatingLTE = floatPtr(ratingThreshold) }, func(r row) bool { return r.rating <= 2.5 }},
		{"rating>=2.5", func(l *ListFilter) { l.RatingGTE = floatPtr(ratingThreshold) }, func(r row) bool { return r.rating >= 2.5 }},
	}

	for mask := 1; mask < 1<<len(predicates); mask++ {
		var filter ListFilter
		var label string
		var active []func(row) bool
		for i, p := range predicates {
			if mask&(1<<i) == 0 {
				continue
			}
			p.apply(&filter)
			active = append(active, p.match)
			label += p.name + " "
		}
		filter.Order = OrderDurationAsc

		want := []string{}
		for _, r := range catalog {
			ok := true
			for _, m := range active {
				ok = ok && m(r)
			}
			if ok {
				want = append(want, r.name)
			}
		}

		t.Run(fmt.Sprintf("%02d %s", mask, label), func(t *testing.T) {
			assert.Equal(t, want, recipeNames(f.list(t, filter)))
		})
	}
}

func TestBuildListQuery_UnratedRecipeHasZeroRating(t *testing.T) {
	f := newFixture(t)

	withZero := recipeNames(f.list(t, ListFilter{RatingGTE: floatPtr(0), Order: OrderDurationAsc}))
	assert.Equal(t, []string{"short", "medium", "long"}, withZero)

	aboveZero := recipeNames(f.list(t, ListFilter{RatingGTE: floatPtr(0.1), Order: OrderDurationAsc}))
	assert.Equal(t, []string{"short", "long"}, aboveZero)
}

func TestBuildListQuery_IngredientsRequireAll(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name        string
		ingredients []string
		want        []string
	}{
		{"subset matches", []string{"egg", "flour"}, []string{"short"}},
		{"missing one excludes", []string{"egg", "sugar"}, []string{"medium"}},
		{"no recipe has both", []string{"egg", "water"}, []string{}},
		{"single shared", []string{"flour"}, []string{"short", "long"}},
		{"duplicates count once", []string{"egg", "egg", "flour"}, []string{"short"}},
		{"unknown name", []string{"saffron"}, []string{}},
		{"case sensitive", []string{"Egg"}, []string{}},
		{"empty set is no filter", []string{}, []string{"short", "medium", "long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.list(t, ListFilter{Ingredients: tt.ingredients, Order: OrderDurationAsc})
			assert.Equal(t, tt.want, append([]string{}, recipeNames(got)...))
		})
	}
}

func TestBuildListQuery_IngredientsAreLoaded(t *testing.T) {
	f := newFixture(t)

	recipes := f.list(t, ListFilter{Ingredients: []string{"egg"}, Order: OrderDurationAsc})
	require.Len(t, recipes, 2)
	assert.ElementsMatch(t, []string{"egg", "flour", "milk"}, recipes[0].IngredientNames())
	assert.ElementsMatch(t, []string{"egg", "sugar"}, recipes[1].IngredientNames())
}

func TestBuildListQuery_Order(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		order Order
		want  []string
	}{
		{OrderDurationAsc, []string{"short", "medium", "long"}},
		{OrderDurationDesc, []string{"long", "medium", "short"}},
		{OrderRatingAsc, []string{"medium", "long", "short"}},
		{OrderRatingDesc, []string{"short", "long", "medium"}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, recipeNames(f.list(t, ListFilter{Order: tt.order})))
		})
	}
}

func TestBuildListQuery_SubSecondDurationBounds(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{"gte rounds nothing down", ListFilter{DurationGTE: durationPtr(60500 * time.Millisecond)}, []string{"medium", "long"}},
		{"gte exact", ListFilter{DurationGTE: durationPtr(60 * time.Second)}, []string{"short", "medium", "long"}},
		{"lte above", ListFilter{DurationLTE: durationPtr(60500 * time.Millisecond)}, []string{"short"}},
		{"lte below", ListFilter{DurationLTE: durationPtr(59500 * time.Millisecond)}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Order = OrderDurationAsc
			assert.Equal(t, tt.want, recipeNames(f.list(t, tt.filter)))
		})
	}
}

func TestBuildListQuery_CombinedWithIngredients(t *testing.T) {
	f := newFixture(t)

	got := f.list(t, ListFilter{
		Ingredients: []string{"flour"},
		DurationGTE: durationPtr(2 * time.Minute),
		Order:       OrderRatingDesc,
	})
	assert.Equal(t, []string{"long"}, recipeNames(got))
}

func TestBuildListQuery_IsReusable(t *testing.T) {
	f := newFixture(t)

	query := BuildListQuery(f.db, ListFilter{RatingGTE: floatPtr(1), Order: OrderRatingDesc})

	var count int64
	require.NoError(t, query.Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var first, second []entities.Recipe
	require.NoError(t, query.Limit(1).Find(&first).Error)
	require.NoError(t, query.Offset(1).Limit(1).Find(&second).Error)
	assert.Equal(t, []string{"short"}, recipeNames(first))
	assert.Equal(t, []string{"long"}, recipeNames(second))
}

func TestListRecipes_Paginates(t *testing.T) {
	f := newFixture(t)

	recipes, total, err := f.repo.ListRecipes(context.Background(), ListFilter{Order: OrderDurationDesc}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "short", recipes[0].Name)
	assert.ElementsMatch(t, []string{"egg", "flour", "milk"}, recipes[0].IngredientNames())
}
