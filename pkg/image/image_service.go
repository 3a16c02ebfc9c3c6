package image

import (
	"context"
	"mime/multipart"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const folder = "images"

type (
	ImageService interface {
		UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]domain.StoredImage, error)
		GetImageURL(ctx context.Context, id string) (string, error)
	}

	imageService struct {
		imageRepository ImageRepository
		s3              storage.AwsS3
	}
)

func NewImageService(imageRepository ImageRepository, s3 storage.AwsS3) ImageService {
	return &imageService{
		imageRepository: imageRepository,
		s3:              s3,
	}
}

// UploadImages stores every file or none. Files whose content is not an image
// reject the whole batch before anything is uploaded.
func (s *imageService) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]domain.StoredImage, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoImages
	}

	var invalid []domain.InvalidImage
	for i, file := range files {
		ok, err := storage.IsAllowed(file, storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		if !ok {
			invalid = append(invalid, domain.InvalidImage{Position: i, Filename: file.Filename})
		}
	}
	if len(invalid) > 0 {
		return nil, &domain.InvalidImagesError{Images: invalid}
	}

	images := make([]entities.Image, 0, len(files))
	for _, file := range files {
		id := uuid.New()
		objectKey, err := s.s3.UploadFile(id.String(), file, folder, storage.AllowImage...)
		if err != nil {
			s.discard(images)
			return nil, err
		}

		var filename *string
		if file.Filename != "" {
			name := file.Filename
			filename = &name
		}
		images = append(images, entities.Image{ID: id, Path: objectKey, OriginalFilename: filename})
	}

	if err := s.imageRepository.CreateImages(ctx, images); err != nil {
		s.discard(images)
		return nil, err
	}

	res := make([]domain.StoredImage, 0, len(images))
	for _, img := range images {
		res = append(res, domain.StoredImage{ID: img.ID.String(), OriginalFilename: img.OriginalFilename})
	}
	return res, nil
}

func (s *imageService) GetImageURL(ctx context.Context, id string) (string, error) {
	imageID, err := uuid.Parse(id)
	if err != nil {
		return "", domain.ErrImageNotFound
	}

	image, err := s.imageRepository.GetImageByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(image.Path), nil
}

func (s *imageService) discard(images []entities.Image) {
	for _, img := range images {
		if err := s.s3.DeleteFile(img.Path); err != nil {
			log.Warnf("failed to remove orphaned object %s: %v", img.Path, err)
		}
	}
}
