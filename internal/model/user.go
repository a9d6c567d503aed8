package model

import "time"

// User represents an application user record as stored in the `users` table,
// with the role names resolved from the user_roles join. The password hash
// is never serialized.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role maps a small integer id to a role name in the `roles` table. Rows are
// created lazily with get-or-create semantics, one row per distinct value.
type Role struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
}
