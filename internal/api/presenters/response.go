package presenters

import (
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes err under message. A rejected image batch also lists
// the offending files.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}

	var invalid *domain.InvalidImagesError
	if errors.As(err, &invalid) {
		res.Data = invalid.Images
	}
	return c.Status(statusCode).JSON(res)
}

// StatusFromError picks the HTTP status for a service error.
func StatusFromError(err error) int {
	var (
		validationErrs validator.ValidationErrors
		invalidImages  *domain.InvalidImagesError
	)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrIngredientConflict),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrEmailAlreadyUsed):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.As(err, &validationErrs),
		errors.As(err, &invalidImages),
		errors.Is(err, domain.ErrInvalidOrderToken),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidRecipeID),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrNoImages),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
