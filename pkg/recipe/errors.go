package recipe

import (
	"fmt"

	"recipe-catalog/domain"
	"recipe-catalog/internal/utils/dberror"

	"gorm.io/gorm"
)

// translateRateError maps a rating insert failure to a domain error. A
// foreign key violation means the recipe is gone; a duplicate key means the
// user already rated it. Anything else is returned unchanged.
func translateRateError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberror.IsForeignKeyViolation(err):
		return domain.ErrRecipeNotFound
	case dberror.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyRated, err)
	}
	return err
}

// translateIngredientInsertError reports a lost ingredient name race as a
// retryable conflict.
func translateIngredientInsertError(err error) error {
	if err != nil && dberror.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrIngredientConflict, err)
	}
	return err
}

// translateImageRefError maps a foreign key violation raised while writing a
// recipe row or its steps to a missing image.
func translateImageRefError(err error) error {
	if err != nil && dberror.IsForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrImageNotFound, err)
	}
	return err
}

// translateDeleteResult turns a delete that removed nothing into NotFound.
func translateDeleteResult(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}
