package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/giarts/atelie-api/internal/model"
	"github.com/giarts/atelie-api/internal/utils"
)

// ErrEmailExists is returned when a create or update collides with an
// existing user's email.
var ErrEmailExists = errors.New("email already exists")

// UserRepo is the MySQL implementation of UserStore. Role rows are resolved
// through RoleRepo before the user transaction starts.
type UserRepo struct {
	db    *sql.DB
	roles *RoleRepo
}

func NewUserRepo(db *sql.DB, roles *RoleRepo) *UserRepo {
	return &UserRepo{db: db, roles: roles}
}

// Create inserts the user and its role assignment in one transaction and
// returns the new id.
func (r *UserRepo) Create(ctx context.Context, name, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	roleRow, err := r.roles.GetOrCreate(ctx, role)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES (?,?,?)",
		name, email, hash)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO user_roles (user_id, role_id) VALUES (?,?)",
		uint64(id), roleRow.ID); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const userColumns = `u.id, u.name, u.email, u.password_hash, u.created_at, u.updated_at,
	COALESCE(GROUP_CONCAT(r.name ORDER BY r.id), '')`

const userJoin = `FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var roles string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &roles); err != nil {
		return nil, err
	}
	if roles != "" {
		u.Roles = strings.Split(roles, ",")
	}
	return &u, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	q := "SELECT " + userColumns + " " + userJoin + " WHERE u.email=? GROUP BY u.id LIMIT 1"
	u, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	// GROUP BY over a LEFT JOIN yields no row only when the user is absent,
	// but MySQL returns an all-NULL aggregate row for some modes; guard on id.
	if u.ID == 0 {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	q := "SELECT " + userColumns + " " + userJoin + " WHERE u.id=? GROUP BY u.id LIMIT 1"
	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.ID == 0 {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns all users ordered by id.
func (r *UserRepo) List(ctx context.Context) ([]*model.User, error) {
	q := "SELECT " + userColumns + " " + userJoin + " GROUP BY u.id ORDER BY u.id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update replaces name, email and password of an existing user. The password
// is re-hashed. Returns the updated record.
func (r *UserRepo) Update(ctx context.Context, id uint64, name, email, password string, cost int) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET name=?, email=?, password_hash=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		name, email, hash, id)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either the row is missing or the values were identical; distinguish
		// by re-reading.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the user row entirely; user_roles rows cascade.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
