package service

import (
	"context"
	"errors"
	"log"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/repository"
)

// EnsureAdmin creates the bootstrap admin account on startup if no user with
// the configured admin email exists yet. An already-present account is left
// untouched.
func EnsureAdmin(ctx context.Context, users repository.UserStore, email, password string, cost int) error {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("admin bootstrap: email %q already in use, skipping", existing.Email)
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	id, err := users.Create(ctx, "ADMIN", email, password, auth.RoleAdmin, cost)
	if err != nil {
		return err
	}
	log.Printf("admin bootstrap: created admin user id=%d", id)
	return nil
}
