package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/giarts/atelie-api/internal/model"
)

// ProductImageRepo is the MySQL implementation of ProductImageStore.
type ProductImageRepo struct{ db *sql.DB }

func NewProductImageRepo(db *sql.DB) *ProductImageRepo { return &ProductImageRepo{db: db} }

// Insert persists an image metadata row and populates id and timestamps.
func (r *ProductImageRepo) Insert(ctx context.Context, img *model.ProductImage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO product_images (product_id, image_url, is_main_image, file_name, file_size, file_type)
		 VALUES (?,?,?,?,?,?)`,
		img.ProductID, img.ImageURL, img.IsMainImage, img.FileName, img.FileSize, img.FileType)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM product_images WHERE id=?", img.ID).
		Scan(&img.CreatedAt, &img.UpdatedAt)
}

// GetByID fetches an image row by its id only; ownership is not checked here.
func (r *ProductImageRepo) GetByID(ctx context.Context, imageID uint64) (*model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, product_id, image_url, is_main_image, file_name, file_size, file_type, created_at, updated_at
		 FROM product_images WHERE id=? LIMIT 1`, imageID).
		Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.IsMainImage,
			&img.FileName, &img.FileSize, &img.FileType, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

// ListByProduct returns all image rows of a product in primary key order.
func (r *ProductImageRepo) ListByProduct(ctx context.Context, productID uint64) ([]*model.ProductImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, image_url, is_main_image, file_name, file_size, file_type, created_at, updated_at
		 FROM product_images WHERE product_id=? ORDER BY id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ProductImage
	for rows.Next() {
		img := new(model.ProductImage)
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.IsMainImage,
			&img.FileName, &img.FileSize, &img.FileType, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Delete removes an image metadata row.
func (r *ProductImageRepo) Delete(ctx context.Context, imageID uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM product_images WHERE id=?", imageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImageNotFound
	}
	return nil
}
