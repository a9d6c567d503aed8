package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/giarts/atelie-api/internal/model"
)

// EventRepo is the MySQL implementation of EventStore.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Create inserts an event and populates its id and timestamp fields.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO events (name, description, location, date_time) VALUES (?,?,?,?)",
		e.Name, e.Description, e.Location, e.DateTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM events WHERE id=?", e.ID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
}

// GetByID fetches an event by id.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	var e model.Event
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, location, date_time, created_at, updated_at FROM events WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.DateTime, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns all events ordered by id.
func (r *EventRepo) List(ctx context.Context) ([]*model.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, description, location, date_time, created_at, updated_at FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Event
	for rows.Next() {
		e := new(model.Event)
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location,
			&e.DateTime, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields of an existing event.
func (r *EventRepo) Update(ctx context.Context, e *model.Event) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE events SET name=?, description=?, location=?, date_time=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		e.Name, e.Description, e.Location, e.DateTime, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM events WHERE id=?", e.ID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
}

// Delete removes an event; its image rows cascade at the schema level.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Exists reports whether an event row with the given id is present.
func (r *EventRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM events WHERE id=? LIMIT 1", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
