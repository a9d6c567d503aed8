package handler

import (
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/middleware"
	"github.com/giarts/atelie-api/internal/repository"
)

// UserHandler exposes the user resource. All id-scoped operations enforce
// "self or admin" through the access decision.
type UserHandler struct {
	Users      repository.UserStore
	BcryptCost int
}

func NewUserHandler(users repository.UserStore, bcryptCost int) *UserHandler {
	return &UserHandler{Users: users, BcryptCost: bcryptCost}
}

type updateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.requireSelfOrAdmin(c, id); err != nil {
		return err
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Update handles PUT /users/:id. Name, email and password are replaced; the
// password is re-hashed.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.requireSelfOrAdmin(c, id); err != nil {
		return err
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	var details []string
	if req.Name == "" {
		details = append(details, "name is required")
	}
	if req.Email == "" {
		details = append(details, "email is required")
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		details = append(details, "email must be valid")
	}
	if req.Password == "" {
		details = append(details, "password is required")
	}
	if len(details) > 0 {
		return validationError(details...)
	}

	u, err := h.Users.Update(c.Request().Context(), id, req.Name, req.Email, req.Password, h.BcryptCost)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.requireSelfOrAdmin(c, id); err != nil {
		return err
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// requireSelfOrAdmin consults the access decision for the target owner id.
func (h *UserHandler) requireSelfOrAdmin(c echo.Context, ownerID uint64) error {
	ok, err := auth.CanAccessUser(middleware.CurrentPrincipal(c), ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return auth.ErrAccessDenied
	}
	return nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, validationError("invalid " + name)
	}
	return id, nil
}
