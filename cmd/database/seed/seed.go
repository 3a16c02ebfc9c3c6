package seed

import (
	"context"
	"fmt"

	"recipe-catalog/entities"
	"recipe-catalog/pkg/image"
	"recipe-catalog/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type sampleStep struct {
	description string
	duration    int64
}

type sampleRecipe struct {
	name        string
	description string
	ingredients []string
	steps       []sampleStep
}

var catalog = []sampleRecipe{
	{
		name:        "pancakes",
		description: "thin breakfast pancakes",
		ingredients: []string{"egg", "flour", "milk", "sugar"},
		steps: []sampleStep{
			{"whisk eggs with milk and sugar", 180},
			{"fold in the flour and rest the batter", 900},
			{"fry on a hot buttered pan", 600},
		},
	},
	{
		name:        "omelette",
		description: "plain three egg omelette",
		ingredients: []string{"egg", "butter", "salt"},
		steps: []sampleStep{
			{"beat the eggs with salt", 60},
			{"cook in butter over low heat", 240},
		},
	},
	{
		name:        "bread",
		description: "white loaf",
		ingredients: []string{"flour", "water", "yeast", "salt"},
		steps: []sampleStep{
			{"mix and knead the dough", 600},
			{"let it rise", 3600},
			{"shape and proof", 1800},
			{"bake", 2400},
		},
	},
	{
		name:        "tomato soup",
		description: "quick soup from canned tomatoes",
		ingredients: []string{"tomato", "onion", "butter", "salt", "water"},
		steps: []sampleStep{
			{"soften the onion in butter", 420},
			{"add tomatoes and water and simmer", 1200},
			{"blend until smooth", 120},
		},
	},
}

// Seed inserts a small fixed catalog through the regular write path. It does
// nothing when recipes already exist. Image rows point at object keys under
// images/seed-* which have to be uploaded to the bucket separately.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Infof("Skipping seed, %d recipes already present", count)
		return nil
	}

	images := make([]entities.Image, len(catalog))
	for i := range images {
		filename := fmt.Sprintf("seed-%d.png", i+1)
		images[i] = entities.Image{Path: "images/seed-" + fmt.Sprint(i+1), OriginalFilename: &filename}
	}
	if err := image.NewImageRepository(db).CreateImages(ctx, images); err != nil {
		log.Errorf("Error seeding images: %v", err)
		return err
	}

	recipes := recipe.NewRecipeRepository(db)
	for i, sample := range catalog {
		img := images[i].ID
		steps := make([]entities.Step, len(sample.steps))
		for j, s := range sample.steps {
			steps[j] = entities.Step{Order: j + 1, Description: s.description, Duration: s.duration, ImageID: img}
		}

		r := &entities.Recipe{Name: sample.name, Description: sample.description, ImageID: img, Steps: steps}
		if _, err := recipes.CreateRecipe(ctx, r, sample.ingredients); err != nil {
			log.Errorf("Error seeding recipe %q: %v", sample.name, err)
			return err
		}
	}

	log.Infof("Seeded %d images and %d recipes", len(images), len(catalog))
	return nil
}
