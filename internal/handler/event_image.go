package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/service"
)

// EventImageHandler exposes the image sub-resource of an event. Unlike
// products there is no main-image flag.
type EventImageHandler struct {
	Images *service.EventImageService
}

func NewEventImageHandler(images *service.EventImageService) *EventImageHandler {
	return &EventImageHandler{Images: images}
}

// List handles GET /events/:id/images.
func (h *EventImageHandler) List(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	images, err := h.Images.List(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// Upload handles POST /events/:id/images with the file under "file".
func (h *EventImageHandler) Upload(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return validationError("file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := h.Images.Upload(c.Request().Context(), eventID, fh.Filename,
		fh.Header.Get(echo.HeaderContentType), fh.Size, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, img)
}

// Delete handles DELETE /events/:id/images/:imageId.
func (h *EventImageHandler) Delete(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}
	if err := h.Images.Delete(c.Request().Context(), eventID, imageID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
