// Package repository defines the data access layer: sentinel errors, the
// store interfaces consumed by services and handlers, and their MySQL
// implementations. The sentinels let higher layers distinguish failure
// scenarios without inspecting driver errors.
package repository

import "errors"

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrProductNotFound is returned when no product row matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ErrEventNotFound is returned when no event row matches the lookup.
var ErrEventNotFound = errors.New("event not found")

// ErrImageNotFound is returned when an image row does not exist.
var ErrImageNotFound = errors.New("image not found")
