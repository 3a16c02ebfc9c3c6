package routes

import (
	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	ImageHandler  handlers.ImageHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Images()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/jwt/login", c.UserHandler.Login)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipe")
	authenticated := c.Middleware.AuthMiddleware(c.JWTService)

	// public
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	// authenticated
	recipes.Post("", authenticated, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", authenticated, c.RecipeHandler.EditRecipe)
	recipes.Delete("/:id", authenticated, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/rate", authenticated, c.RecipeHandler.RateRecipe)
}

func (c *Config) Images() {
	images := c.App.Group("/api/v1/images")
	images.Post("/upload", c.ImageHandler.UploadImages)
	images.Get("/:id", c.ImageHandler.GetImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
