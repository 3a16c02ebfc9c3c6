package recipe

import (
	"fmt"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

const (
	stepTotalsAlias = "step_totals"
	rateTotalsAlias = "rate_totals"
)

// Column is a derived, query-local column: the expression to use in WHERE and
// the alias it is selected under.
type Column struct {
	Expr  string
	Alias string
}

// Projection holds the two aggregate columns joined into the list query.
// Filters and ordering must reference these exact instances so that each
// aggregate is joined once.
type Projection struct {
	TotalDuration Column
	Rating        Column

	stepTotals *gorm.DB
	rateTotals *gorm.DB
}

// NewProjection builds the grouped sub-aggregations over steps and
// recipe_rates. Both are left joined and coalesced to zero, so a recipe with
// no ratings (or, against validation, no steps) keeps a numeric value.
func NewProjection(db *gorm.DB) Projection {
	base := db.Session(&gorm.Session{NewDB: true})

	stepTotals := base.Model(&entities.Step{}).
		Select("recipe_id, CAST(SUM(duration) AS BIGINT) AS total_duration").
		Group("recipe_id")

	rateTotals := base.Model(&entities.RecipeRate{}).
		Select("recipe_id, AVG(CAST(rate AS FLOAT)) AS rating").
		Group("recipe_id")

	return Projection{
		TotalDuration: Column{
			Expr:  fmt.Sprintf("COALESCE(%s.total_duration, 0)", stepTotalsAlias),
			Alias: "total_duration",
		},
		Rating: Column{
			Expr:  fmt.Sprintf("COALESCE(%s.rating, 0)", rateTotalsAlias),
			Alias: "rating",
		},
		stepTotals: stepTotals,
		rateTotals: rateTotals,
	}
}

// Join selects the recipe row plus both derived columns and attaches the
// aggregates to query, which must be rooted at the recipes table.
func (p Projection) Join(query *gorm.DB) *gorm.DB {
	return query.
		Select(fmt.Sprintf("recipes.*, %s AS %s, %s AS %s",
			p.TotalDuration.Expr, p.TotalDuration.Alias,
			p.Rating.Expr, p.Rating.Alias,
		)).
		Joins(fmt.Sprintf("LEFT JOIN (?) AS %s ON %s.recipe_id = recipes.id", stepTotalsAlias, stepTotalsAlias), p.stepTotals).
		Joins(fmt.Sprintf("LEFT JOIN (?) AS %s ON %s.recipe_id = recipes.id", rateTotalsAlias, rateTotalsAlias), p.rateTotals)
}

func (c Column) LTE(v interface{}) Condition {
	return Cond(c.Expr+" <= ?", v)
}

func (c Column) GTE(v interface{}) Condition {
	return Cond(c.Expr+" >= ?", v)
}
