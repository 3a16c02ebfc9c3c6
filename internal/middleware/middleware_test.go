package middleware

import (
	"net/http/httptest"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret")

	app := fiber.New()
	app.Get("/me", NewMiddleware().AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string) + ":" + c.Locals("role").(string))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"invalid token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + jwtService.GenerateTokenUser("user-1", domain.RoleUser), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
