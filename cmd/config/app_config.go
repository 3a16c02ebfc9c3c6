package config

import (
	"os"
	"time"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/routes"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/internal/utils"
	"recipe-catalog/internal/utils/storage"
	"recipe-catalog/pkg/image"
	"recipe-catalog/pkg/jwt"
	"recipe-catalog/pkg/recipe"
	"recipe-catalog/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	return newApp(db, storage.NewAwsS3(), AppOptions{
		LogFile:     "./logs/app.log",
		RateLimit:   10,
		MaxPageSize: utils.GetConfigInt("MAX_PAGE_SIZE", 100),
		JWTSecret:   utils.GetConfig("JWT_SECRET"),
	})
}

// AppOptions tunes the ambient parts of the app. An empty LogFile logs access
// to stdout and a zero RateLimit disables the limiter.
type AppOptions struct {
	LogFile     string
	RateLimit   int
	MaxPageSize int
	JWTSecret   string
}

// NewAppWithStorage wires the app against an explicit blob store.
func NewAppWithStorage(db *gorm.DB, s3 storage.AwsS3, opts AppOptions) (*fiber.App, error) {
	return newApp(db, s3, opts)
}

func newApp(db *gorm.DB, s3 storage.AwsS3, opts AppOptions) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: opts.LogFile != "",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	loggerConfig := logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
	}
	if opts.LogFile != "" {
		err := os.MkdirAll("./logs", os.ModePerm)
		if err != nil {
			log.Errorf("error creating logs directory: %v", err)
			return nil, err
		}
		file, err := os.OpenFile(
			opts.LogFile,
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			log.Errorf("error opening file: %v", err)
			return nil, err
		}
		loggerConfig.Output = file
	}
	app.Use(logger.New(loggerConfig))

	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	imageRepository := image.NewImageRepository(db)

	// Service
	jwtService := jwt.NewJWTService(opts.JWTSecret)
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, opts.MaxPageSize)
	imageService := image.NewImageService(imageRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	imageHandler := handlers.NewImageHandler(imageService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		RecipeHandler: recipeHandler,
		ImageHandler:  imageHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
