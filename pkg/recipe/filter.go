package recipe

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Condition is an optional boolean predicate. The zero value means "no
// constraint" and is skipped when folded into a Filter.
type Condition struct {
	expr clause.Expression
}

// Cond wraps a SQL fragment (with gorm placeholders) as a present condition.
func Cond(sql string, vars ...interface{}) Condition {
	return Condition{expr: clause.Expr{SQL: sql, Vars: vars}}
}

func (c Condition) Present() bool {
	return c.expr != nil
}

// Filter is the conjunction of the present conditions folded into it. The
// zero value is "no filter", which is distinct from an always-true predicate:
// Apply leaves the query without a WHERE clause.
type Filter struct {
	exprs []clause.Expression
}

// Combine folds next into existing with logical AND. Absent conditions leave
// existing unchanged. existing is never mutated.
func Combine(existing Filter, next Condition) Filter {
	if !next.Present() {
		return existing
	}
	exprs := make([]clause.Expression, 0, len(existing.exprs)+1)
	exprs = append(exprs, existing.exprs...)
	exprs = append(exprs, next.expr)
	return Filter{exprs: exprs}
}

// CombineAll is the left fold of Combine starting from "no filter".
func CombineAll(conds ...Condition) Filter {
	var f Filter
	for _, c := range conds {
		f = Combine(f, c)
	}
	return f
}

func (f Filter) Empty() bool {
	return len(f.exprs) == 0
}

// Len reports how many conditions the filter carries.
func (f Filter) Len() int {
	return len(f.exprs)
}

// Expression returns the combined predicate, or nil for "no filter".
func (f Filter) Expression() clause.Expression {
	if f.Empty() {
		return nil
	}
	return clause.And(f.exprs...)
}

// Apply adds the combined predicate as a single WHERE condition.
func (f Filter) Apply(query *gorm.DB) *gorm.DB {
	if f.Empty() {
		return query
	}
	return query.Where(f.Expression())
}
