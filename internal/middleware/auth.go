// Package middleware provides shared request processing: the authentication
// filter, role enforcement, rate limiting and response caching.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/repository"
)

// principalKey is the echo context key under which the resolved principal is
// stored for the remainder of the request. The context is request-scoped, so
// nothing leaks across requests.
const principalKey = "principal"

// Authenticate returns the once-per-request authentication filter. Requests
// without an Authorization header pass through unauthenticated. When a header
// is present the "Bearer " prefix is stripped leniently, the token verified,
// and the subject resolved against the credential store:
//
//   - verification failure propagates as a request failure (401 via the
//     central error translator), never silently swallowed;
//   - an unknown subject leaves the principal absent so downstream
//     authorization fails closed.
func Authenticate(tokens *auth.TokenService, users repository.UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			subject, err := tokens.VerifySubject(raw)
			if err != nil {
				return err
			}

			u, err := users.GetByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(principalKey, &auth.Principal{
				UserID: u.ID,
				Email:  u.Email,
				Roles:  u.Roles,
			})
			return next(c)
		}
	}
}

// CurrentPrincipal returns the principal resolved by Authenticate, or nil
// when the request is anonymous.
func CurrentPrincipal(c echo.Context) *auth.Principal {
	p, _ := c.Get(principalKey).(*auth.Principal)
	return p
}

// RequireAuth rejects requests that carry no resolved principal.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentPrincipal(c) == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole enforces that the authenticated principal carries one of the
// given roles. Requests with a missing principal or a role outside the
// allowed set are rejected with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := CurrentPrincipal(c)
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, r := range p.Roles {
				if allowed[r] {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}
