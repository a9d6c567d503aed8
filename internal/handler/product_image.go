package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/service"
)

// ProductImageHandler exposes the image sub-resource of a product.
type ProductImageHandler struct {
	Images *service.ProductImageService
}

func NewProductImageHandler(images *service.ProductImageService) *ProductImageHandler {
	return &ProductImageHandler{Images: images}
}

// List handles GET /products/:id/images.
func (h *ProductImageHandler) List(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	images, err := h.Images.List(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// Upload handles POST /products/:id/images. The multipart form carries the
// file under "file" and an optional "isMainImage" boolean field.
func (h *ProductImageHandler) Upload(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return validationError("file is required")
	}
	isMain := false
	if v := c.FormValue("isMainImage"); v != "" {
		isMain, err = strconv.ParseBool(v)
		if err != nil {
			return validationError("isMainImage must be a boolean")
		}
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := h.Images.Upload(c.Request().Context(), productID, fh.Filename,
		fh.Header.Get(echo.HeaderContentType), fh.Size, src, isMain)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, img)
}

// Delete handles DELETE /products/:id/images/:imageId.
func (h *ProductImageHandler) Delete(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}
	if err := h.Images.Delete(c.Request().Context(), productID, imageID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
