package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/model"
	"github.com/giarts/atelie-api/internal/repository"
)

// ProductHandler exposes plain CRUD over catalog products.
type ProductHandler struct {
	Products repository.ProductStore
}

func NewProductHandler(products repository.ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

type productReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ProductType string `json:"productType"`
}

func (r *productReq) validate() error {
	var details []string
	if strings.TrimSpace(r.Name) == "" {
		details = append(details, "name is required")
	}
	if strings.TrimSpace(r.ProductType) == "" {
		details = append(details, "productType is required")
	}
	if len(details) > 0 {
		return validationError(details...)
	}
	return nil
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.Products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.Products.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}
	p := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ProductType: strings.TrimSpace(req.ProductType),
	}
	if err := h.Products.Create(c.Request().Context(), p); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", p.ID))
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}
	p := &model.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		ProductType: strings.TrimSpace(req.ProductType),
	}
	if err := h.Products.Update(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /products/:id. Associated image rows cascade.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Products.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
