package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/giarts/atelie-api/internal/model"
)

// RoleRepo manages the shared role reference rows. Roles are a closed set
// but rows are created lazily so a fresh database needs no seed data.
type RoleRepo struct{ db *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{db: db} }

// GetOrCreate returns the role row for the given name, inserting it first if
// absent. The operation is idempotent: a concurrent insert losing the race on
// the unique key falls back to re-reading the winner's row.
func (r *RoleRepo) GetOrCreate(ctx context.Context, name string) (*model.Role, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	role, err := r.getByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, "INSERT INTO roles (name) VALUES (?)", name)
	if err != nil {
		if isDuplicateKey(err) {
			return r.getByName(ctx, name)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Role{ID: uint8(id), Name: name}, nil
}

func (r *RoleRepo) getByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name FROM roles WHERE name=? LIMIT 1", name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// isDuplicateKey detects MySQL error 1062 (duplicate entry).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
