package recipe

import (
	"fmt"
	"strings"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Order selects the sort key of the list query. It is decided once from the
// request token by ParseOrder.
type Order int

const (
	OrderNone Order = iota
	OrderDurationAsc
	OrderDurationDesc
	OrderRatingAsc
	OrderRatingDesc
)

// ParseOrder maps an order token ("duration", "-duration", "rating",
// "-rating") to an Order. The empty token means no ordering.
func ParseOrder(token string) (Order, error) {
	switch strings.TrimSpace(token) {
	case "":
		return OrderNone, nil
	case "duration":
		return OrderDurationAsc, nil
	case "-duration":
		return OrderDurationDesc, nil
	case "rating":
		return OrderRatingAsc, nil
	case "-rating":
		return OrderRatingDesc, nil
	}
	return OrderNone, fmt.Errorf("%w: %q", domain.ErrInvalidOrderToken, token)
}

func (o Order) String() string {
	switch o {
	case OrderDurationAsc:
		return "duration"
	case OrderDurationDesc:
		return "-duration"
	case OrderRatingAsc:
		return "rating"
	case OrderRatingDesc:
		return "-rating"
	}
	return ""
}

// ListFilter carries the independently optional list constraints. Nil
// pointers and a nil ingredient set mean "not constrained".
type ListFilter struct {
	DurationLTE *time.Duration
	DurationGTE *time.Duration
	RatingLTE   *float64
	RatingGTE   *float64
	Ingredients []string
	Order       Order
}

// BuildListQuery composes the recipe list query: recipes joined with their
// total duration and rating, narrowed by every supplied filter and ordered by
// the requested derived column. The returned query is not executed; it can be
// counted, paginated and loaded with WithIngredients.
func BuildListQuery(db *gorm.DB, f ListFilter) *gorm.DB {
	proj := NewProjection(db)

	filter := CombineAll(
		durationCond(proj.TotalDuration.LTE, f.DurationLTE),
		durationCond(proj.TotalDuration.GTE, f.DurationGTE),
		ratingCond(proj.Rating.LTE, f.RatingLTE),
		ratingCond(proj.Rating.GTE, f.RatingGTE),
		containsAllIngredients(db, f.Ingredients),
	)

	query := proj.Join(db.Model(&entities.Recipe{}))
	query = filter.Apply(query)
	query = applyOrder(query, proj, f.Order)

	return query.Session(&gorm.Session{})
}

// WithIngredients eagerly attaches each recipe's ingredient associations and
// their names to the results of query.
func WithIngredients(query *gorm.DB) *gorm.DB {
	return query.Preload("Ingredients.Ingredient")
}

// durationCond compares in fractional seconds so a sub-second bound is not
// truncated in either direction.
func durationCond(build func(interface{}) Condition, d *time.Duration) Condition {
	if d == nil {
		return Condition{}
	}
	return build(d.Seconds())
}

func ratingCond(build func(interface{}) Condition, r *float64) Condition {
	if r == nil {
		return Condition{}
	}
	return build(*r)
}

// containsAllIngredients keeps recipes that have every requested ingredient.
// It is a single grouped semi-join: per recipe, count the associated
// ingredients whose name is in the requested set and compare with the set
// size. Extra ingredients on the recipe do not matter.
func containsAllIngredients(db *gorm.DB, names []string) Condition {
	names = uniqueNames(names)
	if len(names) == 0 {
		return Condition{}
	}

	matching := db.Session(&gorm.Session{NewDB: true}).
		Model(&entities.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Group("recipe_ingredients.recipe_id").
		Having("SUM(CASE WHEN ingredients.name IN ? THEN 1 ELSE 0 END) = ?", names, len(names))

	return Cond("recipes.id IN (?)", matching)
}

func applyOrder(query *gorm.DB, proj Projection, order Order) *gorm.DB {
	var (
		col  Column
		desc bool
	)
	switch order {
	case OrderDurationAsc:
		col = proj.TotalDuration
	case OrderDurationDesc:
		col, desc = proj.TotalDuration, true
	case OrderRatingAsc:
		col = proj.Rating
	case OrderRatingDesc:
		col, desc = proj.Rating, true
	default:
		return query
	}
	return query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: col.Alias, Raw: true}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "recipes", Name: "id"}})
}

// uniqueNames returns names without duplicates, keeping first occurrences.
// Names are case-sensitive.
func uniqueNames(names []string) []string {
	if names == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
