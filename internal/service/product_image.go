// Package service orchestrates the image workflows and startup tasks that
// sit between the HTTP handlers and the repositories.
package service

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/giarts/atelie-api/internal/model"
	q "github.com/giarts/atelie-api/internal/queue"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/storage"
)

// ProductImageService coordinates product validation, file storage, URL
// generation and metadata persistence for product images.
type ProductImageService struct {
	products repository.ProductStore
	images   repository.ProductImageStore
	files    *storage.FileStore
	server   string
	publish  Publisher // nil disables event publishing
}

func NewProductImageService(products repository.ProductStore, images repository.ProductImageStore,
	files *storage.FileStore, serverURL string, publish Publisher) *ProductImageService {
	return &ProductImageService{
		products: products,
		images:   images,
		files:    files,
		server:   serverURL,
		publish:  publish,
	}
}

// List returns all image rows of the product in repository order.
func (s *ProductImageService) List(ctx context.Context, productID uint64) ([]*model.ProductImage, error) {
	if err := s.validateProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.images.ListByProduct(ctx, productID)
}

// Upload stores the file, derives its public URL and persists the metadata
// row. Storage happens before the insert: a failure between the two steps
// leaves an orphan file on disk, never a row pointing at nothing. The file
// name is cleaned up front so the recorded name and URL match the path on
// disk.
func (s *ProductImageService) Upload(ctx context.Context, productID uint64, fileName, fileType string,
	fileSize int64, r io.Reader, isMainImage bool) (*model.ProductImage, error) {
	if err := s.validateProduct(ctx, productID); err != nil {
		return nil, err
	}
	fileName = storage.CleanFileName(fileName)
	if err := s.files.Store(storage.FolderProducts, productID, fileName, r); err != nil {
		return nil, err
	}
	img := &model.ProductImage{
		ProductID:   productID,
		ImageURL:    storage.ImageURL(s.server, storage.FolderProducts, productID, fileName),
		IsMainImage: isMainImage,
		FileName:    fileName,
		FileSize:    fileSize,
		FileType:    fileType,
	}
	if err := s.images.Insert(ctx, img); err != nil {
		return nil, err
	}
	s.notify(ctx, q.ActionUploaded, img)
	return img, nil
}

// Delete removes the metadata row first and the stored file second: a crash
// in between leaves an orphan file, which is safer than a dangling URL. The
// two steps are not atomic.
func (s *ProductImageService) Delete(ctx context.Context, productID, imageID uint64) error {
	if err := s.validateProduct(ctx, productID); err != nil {
		return err
	}
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, imageID); err != nil {
		return err
	}
	if err := s.files.Delete(storage.FolderProducts, productID, img.FileName); err != nil {
		return err
	}
	s.notify(ctx, q.ActionDeleted, img)
	return nil
}

func (s *ProductImageService) validateProduct(ctx context.Context, productID uint64) error {
	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrProductNotFound
	}
	return nil
}

func (s *ProductImageService) notify(ctx context.Context, action string, img *model.ProductImage) {
	if s.publish == nil {
		return
	}
	ev := q.ImageEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		Folder:     string(storage.FolderProducts),
		EntityID:   img.ProductID,
		ImageID:    img.ID,
		FileName:   img.FileName,
		ImageURL:   img.ImageURL,
		FileSize:   img.FileSize,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publish(ctx, ev); err != nil {
		log.Printf("product-image: publish %s event failed: %v", action, err)
	}
}
