package recipe

import (
	"testing"

	"recipe-catalog/entities"
	"recipe-catalog/internal/utils/dbtest"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCombine_SkipsAbsentConditions(t *testing.T) {
	f := CombineAll(Condition{}, Condition{}, Condition{})
	assert.True(t, f.Empty())
	assert.Nil(t, f.Expression())

	f = CombineAll(Condition{}, Cond("a = ?", 1), Condition{}, Cond("b = ?", 2))
	assert.Equal(t, 2, f.Len())
	assert.NotNil(t, f.Expression())
}

func TestCombine_DoesNotMutateExisting(t *testing.T) {
	base := CombineAll(Cond("a = ?", 1))
	left := Combine(base, Cond("b = ?", 2))
	right := Combine(base, Cond("c = ?", 3))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 2, right.Len())
	assert.NotEqual(t, left.Expression(), right.Expression())
}

func TestFilterApply(t *testing.T) {
	db := dbtest.Open(t)

	render := func(f Filter) string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var recipes []entities.Recipe
			return f.Apply(tx.Model(&entities.Recipe{})).Find(&recipes)
		})
	}

	t.Run("no filter adds no where clause", func(t *testing.T) {
		assert.NotContains(t, render(Filter{}), "WHERE")
		assert.NotContains(t, render(CombineAll(Condition{})), "WHERE")
	})

	t.Run("conditions are joined with AND", func(t *testing.T) {
		sql := render(CombineAll(Cond("recipes.id > ?", 1), Condition{}, Cond("recipes.name = ?", "soup")))
		assert.Contains(t, sql, "WHERE")
		assert.Contains(t, sql, "recipes.id > 1")
		assert.Contains(t, sql, "AND")
		assert.Contains(t, sql, "recipes.name = \"soup\"")
	})
}

func TestFilterOrderIndependence(t *testing.T) {
	f := newFixture(t)

	a := Cond("recipes.id <> ?", f.ids["short"])
	b := Cond("recipes.name <> ?", "long")

	ids := func(filter Filter) []uint {
		var got []uint
		err := filter.Apply(f.db.Model(&entities.Recipe{})).Order("id").Pluck("id", &got).Error
		assert.NoError(t, err)
		return got
	}

	assert.Equal(t, ids(CombineAll(a, b)), ids(CombineAll(b, a)))
	assert.Equal(t, ids(CombineAll(a, Condition{}, b)), ids(Combine(Combine(Filter{}, b), a)))
	assert.Equal(t, []uint{f.ids["medium"]}, ids(CombineAll(a, b)))
}
