package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/giarts/atelie-api/internal/model"
)

// EventImageRepo is the MySQL implementation of EventImageStore.
type EventImageRepo struct{ db *sql.DB }

func NewEventImageRepo(db *sql.DB) *EventImageRepo { return &EventImageRepo{db: db} }

// Insert persists an image metadata row and populates id and timestamps.
func (r *EventImageRepo) Insert(ctx context.Context, img *model.EventImage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO event_images (event_id, image_url, file_name, file_size, file_type)
		 VALUES (?,?,?,?,?)`,
		img.EventID, img.ImageURL, img.FileName, img.FileSize, img.FileType)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM event_images WHERE id=?", img.ID).
		Scan(&img.CreatedAt, &img.UpdatedAt)
}

// GetByID fetches an image row by its id only; ownership is not checked here.
func (r *EventImageRepo) GetByID(ctx context.Context, imageID uint64) (*model.EventImage, error) {
	var img model.EventImage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, image_url, file_name, file_size, file_type, created_at, updated_at
		 FROM event_images WHERE id=? LIMIT 1`, imageID).
		Scan(&img.ID, &img.EventID, &img.ImageURL, &img.FileName,
			&img.FileSize, &img.FileType, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

// ListByEvent returns all image rows of an event in primary key order.
func (r *EventImageRepo) ListByEvent(ctx context.Context, eventID uint64) ([]*model.EventImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, image_url, file_name, file_size, file_type, created_at, updated_at
		 FROM event_images WHERE event_id=? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.EventImage
	for rows.Next() {
		img := new(model.EventImage)
		if err := rows.Scan(&img.ID, &img.EventID, &img.ImageURL, &img.FileName,
			&img.FileSize, &img.FileType, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Delete removes an image metadata row.
func (r *EventImageRepo) Delete(ctx context.Context, imageID uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM event_images WHERE id=?", imageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImageNotFound
	}
	return nil
}
