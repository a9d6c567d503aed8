package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/utils"
)

// AuthHandler bundles dependencies for the login and register endpoints.
type AuthHandler struct {
	Users      repository.UserStore
	Tokens     *auth.TokenService
	BcryptCost int
}

func NewAuthHandler(users repository.UserStore, tokens *auth.TokenService, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, BcryptCost: bcryptCost}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a signed bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return validationError("invalid request body")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	var details []string
	if req.Username == "" {
		details = append(details, "username is required")
	} else if !isEmail(req.Username) {
		details = append(details, "username must be a valid email")
	}
	if req.Password == "" {
		details = append(details, "password is required")
	}
	if len(details) > 0 {
		return validationError(details...)
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.Tokens.Issue(u.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResp{Token: token})
}

// Register creates a CUSTOMER-role user and returns it with a Location
// header pointing at the new resource.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
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
	} else if !isEmail(req.Email) {
		details = append(details, "email must be valid")
	}
	if req.Password == "" {
		details = append(details, "password is required")
	}
	if len(details) > 0 {
		return validationError(details...)
	}

	id, err := h.Users.Create(c.Request().Context(), req.Name, req.Email, req.Password,
		auth.RoleCustomer, h.BcryptCost)
	if err != nil {
		return err
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/users/%d", id))
	return c.JSON(http.StatusCreated, u)
}

// isEmail reports whether s parses as a bare address.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
