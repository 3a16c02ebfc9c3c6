package domain

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

var (
	MessageSuccessUploadImages = "images uploaded successfully"
	MessageFailedUploadImages  = "failed to upload images"
	MessageFailedGetImage      = "failed to get image"

	ErrImageNotFound = fmt.Errorf("image %w", ErrNotFound)
	ErrNoImages      = errors.New("no images provided")
)

type (
	UploadImagesRequest struct {
		Files []*multipart.FileHeader `form:"files" validate:"required,min=1"`
	}

	StoredImage struct {
		ID               string  `json:"id"`
		OriginalFilename *string `json:"original_filename"`
	}

	// InvalidImage points at one rejected file of an upload batch.
	InvalidImage struct {
		Position int    `json:"position"`
		Filename string `json:"filename"`
	}

	InvalidImagesError struct {
		Images []InvalidImage
	}
)

func (e *InvalidImagesError) Error() string {
	var b strings.Builder
	b.WriteString("invalid images (")
	for i, img := range e.Images {
		if i > 0 {
			b.WriteString(", ")
		}
		name := img.Filename
		if name == "" {
			name = "unnamed"
		}
		fmt.Fprintf(&b, "%d: %s", img.Position, name)
	}
	b.WriteString(")")
	return b.String()
}
