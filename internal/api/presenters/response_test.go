package presenters

import (
	"errors"
	"fmt"
	"testing"

	"recipe-catalog/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrImageNotFound, fiber.StatusNotFound},
		{fmt.Errorf("%w: fk", domain.ErrImageNotFound), fiber.StatusNotFound},
		{domain.ErrIngredientConflict, fiber.StatusConflict},
		{fmt.Errorf("%w: %w", domain.ErrAlreadyRated, errors.New("duplicate")), fiber.StatusConflict},
		{domain.ErrEmailAlreadyUsed, fiber.StatusConflict},
		{fmt.Errorf("%w: %q", domain.ErrInvalidOrderToken, "name"), fiber.StatusBadRequest},
		{&domain.InvalidImagesError{Images: []domain.InvalidImage{{Position: 0}}}, fiber.StatusBadRequest},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrUserInactive, fiber.StatusForbidden},
		{errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}
