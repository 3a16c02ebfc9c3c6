package handlers

import (
	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/image"

	"github.com/gofiber/fiber/v2"
)

type (
	ImageHandler interface {
		UploadImages(c *fiber.Ctx) error
		GetImage(c *fiber.Ctx) error
	}

	imageHandler struct {
		imageService image.ImageService
	}
)

func NewImageHandler(imageService image.ImageService) ImageHandler {
	return &imageHandler{
		imageService: imageService,
	}
}

func (h *imageHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.imageService.UploadImages(c.Context(), form.File["files"])
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUploadImages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImages)
}

func (h *imageHandler) GetImage(c *fiber.Ctx) error {
	url, err := h.imageService.GetImageURL(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetImage, err)
	}

	return c.Redirect(url, fiber.StatusFound)
}
