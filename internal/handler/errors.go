package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/storage"
)

// APIError is the uniform error envelope returned by every endpoint.
type APIError struct {
	Timestamp string   `json:"timestamp"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Details   []string `json:"details"`
	Path      string   `json:"path"`
}

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string { return "validation failed" }

// validationError is the handlers' shorthand for rejecting bad input.
func validationError(details ...string) error {
	return &ValidationError{Details: details}
}

// NewHTTPErrorHandler returns the centralized translator from domain errors
// to HTTP responses. Domain errors propagate here unmodified from the point
// of detection; nothing downgrades a failure into a default value on the way.
// Unexpected errors are logged and surfaced as a generic 500 without leaking
// internal error text to clients.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"
		details := []string{}

		var ve *ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			message = ve.Error()
			details = ve.Details
		case errors.As(err, &he):
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		case errors.Is(err, repository.ErrUserNotFound),
			errors.Is(err, repository.ErrProductNotFound),
			errors.Is(err, repository.ErrEventNotFound),
			errors.Is(err, repository.ErrImageNotFound):
			status = http.StatusNotFound
			message = err.Error()
		case errors.Is(err, repository.ErrEmailExists):
			status = http.StatusConflict
			message = err.Error()
		case errors.Is(err, auth.ErrAccessDenied):
			status = http.StatusForbidden
			message = err.Error()
		case errors.Is(err, auth.ErrTokenVerification),
			errors.Is(err, auth.ErrNotAuthenticated):
			status = http.StatusUnauthorized
			message = err.Error()
		case errors.Is(err, auth.ErrTokenCreation),
			errors.Is(err, storage.ErrImageStore):
			status = http.StatusInternalServerError
			message = err.Error()
		default:
			e.Logger.Error(err)
		}

		resp := APIError{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Status:    status,
			Error:     http.StatusText(status),
			Message:   message,
			Details:   details,
			Path:      c.Request().URL.Path,
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
