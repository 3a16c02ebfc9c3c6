package recipe

import (
	"errors"
	"fmt"
	"testing"

	"recipe-catalog/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type codedError struct {
	code int
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() int     { return e.code }

func TestTranslateRateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name    string
		err     error
		want    error
		wantRaw bool
	}{
		{name: "nil", err: nil, want: nil},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: domain.ErrRecipeNotFound},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, want: domain.ErrRecipeNotFound},
		{name: "wrapped postgres foreign key", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), want: domain.ErrRecipeNotFound},
		{name: "sqlite foreign key", err: codedError{code: 787, msg: "FOREIGN KEY constraint failed"}, want: domain.ErrRecipeNotFound},
		{name: "sqlite primary code foreign key", err: codedError{code: 19, msg: "FOREIGN KEY constraint failed"}, want: domain.ErrRecipeNotFound},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrAlreadyRated},
		{name: "sqlite primary key", err: codedError{code: 1555, msg: "UNIQUE constraint failed"}, want: domain.ErrAlreadyRated},
		{name: "check constraint passes through", err: &pgconn.PgError{Code: "23514"}, wantRaw: true},
		{name: "unrelated error passes through", err: other, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateRateError(tt.err)
			switch {
			case tt.wantRaw:
				assert.Same(t, tt.err, got)
			case tt.want == nil:
				assert.NoError(t, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}

func TestTranslateRateError_KeepsDuplicateCause(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}
	err := translateRateError(cause)

	var pgErr *pgconn.PgError
	assert.ErrorIs(t, err, domain.ErrAlreadyRated)
	assert.ErrorAs(t, err, &pgErr)
}

func TestTranslateIngredientInsertError(t *testing.T) {
	assert.NoError(t, translateIngredientInsertError(nil))
	assert.ErrorIs(t, translateIngredientInsertError(gorm.ErrDuplicatedKey), domain.ErrIngredientConflict)
	assert.ErrorIs(t, translateIngredientInsertError(codedError{code: 2067, msg: "UNIQUE constraint failed: ingredients.name"}), domain.ErrIngredientConflict)

	other := errors.New("disk full")
	assert.Same(t, other, translateIngredientInsertError(other))
}

func TestTranslateImageRefError(t *testing.T) {
	assert.ErrorIs(t, translateImageRefError(gorm.ErrForeignKeyViolated), domain.ErrImageNotFound)
	assert.ErrorIs(t, translateImageRefError(gorm.ErrForeignKeyViolated), domain.ErrNotFound)

	other := errors.New("timeout")
	assert.Same(t, other, translateImageRefError(other))
}

func TestTranslateDeleteResult(t *testing.T) {
	assert.ErrorIs(t, translateDeleteResult(&gorm.DB{RowsAffected: 0}), domain.ErrRecipeNotFound)
	assert.NoError(t, translateDeleteResult(&gorm.DB{RowsAffected: 1}))

	failed := &gorm.DB{Error: gorm.ErrInvalidDB}
	assert.ErrorIs(t, translateDeleteResult(failed), gorm.ErrInvalidDB)
}
