package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/model"
	"github.com/giarts/atelie-api/internal/repository"
)

// EventHandler exposes plain CRUD over catalog events.
type EventHandler struct {
	Events repository.EventStore
}

func NewEventHandler(events repository.EventStore) *EventHandler {
	return &EventHandler{Events: events}
}

type eventReq struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
}

func (r *eventReq) validate() error {
	var details []string
	if strings.TrimSpace(r.Name) == "" {
		details = append(details, "name is required")
	}
	if r.DateTime.IsZero() {
		details = append(details, "dateTime is required")
	}
	if len(details) > 0 {
		return validationError(details...)
	}
	return nil
}

// List handles GET /events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.Events.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ev, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ev)
}

// Create handles POST /events.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}
	ev := &model.Event{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime.UTC(),
	}
	if err := h.Events.Create(c.Request().Context(), ev); err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/events/%d", ev.ID))
	return c.JSON(http.StatusCreated, ev)
}

// Update handles PUT /events/:id.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}
	ev := &model.Event{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		DateTime:    req.DateTime.UTC(),
	}
	if err := h.Events.Update(c.Request().Context(), ev); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ev)
}

// Delete handles DELETE /events/:id. Associated image rows cascade.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
