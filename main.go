package main

import (
	"context"
	"flag"

	"recipe-catalog/cmd/config"
	migration "recipe-catalog/cmd/database/migrate"
	"recipe-catalog/cmd/database/seed"
	"recipe-catalog/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before serving")
	seedDB := flag.Bool("seed", false, "insert the sample catalog (implies -migrate)")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if *migrate || *seedDB {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}
	if *seedDB {
		if err := seed.Seed(context.Background(), db); err != nil {
			log.Fatalf("Error seeding database: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Error creating app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
