package image

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ImageRepository interface {
		CreateImages(ctx context.Context, images []entities.Image) error
		GetImageByID(ctx context.Context, id uuid.UUID) (*entities.Image, error)
	}

	imageRepository struct {
		db *gorm.DB
	}
)

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) CreateImages(ctx context.Context, images []entities.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *imageRepository) GetImageByID(ctx context.Context, id uuid.UUID) (*entities.Image, error) {
	var image entities.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}
