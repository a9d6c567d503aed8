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

// EventImageService mirrors ProductImageService for event images. Events
// carry no main-image flag.
type EventImageService struct {
	events  repository.EventStore
	images  repository.EventImageStore
	files   *storage.FileStore
	server  string
	publish Publisher
}

func NewEventImageService(events repository.EventStore, images repository.EventImageStore,
	files *storage.FileStore, serverURL string, publish Publisher) *EventImageService {
	return &EventImageService{
		events:  events,
		images:  images,
		files:   files,
		server:  serverURL,
		publish: publish,
	}
}

// List returns all image rows of the event in repository order.
func (s *EventImageService) List(ctx context.Context, eventID uint64) ([]*model.EventImage, error) {
	if err := s.validateEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.images.ListByEvent(ctx, eventID)
}

// Upload stores the file, derives its public URL and persists the metadata
// row, in that order. The file name is cleaned up front so the recorded name
// and URL match the path on disk.
func (s *EventImageService) Upload(ctx context.Context, eventID uint64, fileName, fileType string,
	fileSize int64, r io.Reader) (*model.EventImage, error) {
	if err := s.validateEvent(ctx, eventID); err != nil {
		return nil, err
	}
	fileName = storage.CleanFileName(fileName)
	if err := s.files.Store(storage.FolderEvents, eventID, fileName, r); err != nil {
		return nil, err
	}
	img := &model.EventImage{
		EventID:  eventID,
		ImageURL: storage.ImageURL(s.server, storage.FolderEvents, eventID, fileName),
		FileName: fileName,
		FileSize: fileSize,
		FileType: fileType,
	}
	if err := s.images.Insert(ctx, img); err != nil {
		return nil, err
	}
	s.notify(ctx, q.ActionUploaded, img)
	return img, nil
}

// Delete removes the metadata row first, then the stored file.
func (s *EventImageService) Delete(ctx context.Context, eventID, imageID uint64) error {
	if err := s.validateEvent(ctx, eventID); err != nil {
		return err
	}
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, imageID); err != nil {
		return err
	}
	if err := s.files.Delete(storage.FolderEvents, eventID, img.FileName); err != nil {
		return err
	}
	s.notify(ctx, q.ActionDeleted, img)
	return nil
}

func (s *EventImageService) validateEvent(ctx context.Context, eventID uint64) error {
	ok, err := s.events.Exists(ctx, eventID)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrEventNotFound
	}
	return nil
}

func (s *EventImageService) notify(ctx context.Context, action string, img *model.EventImage) {
	if s.publish == nil {
		return
	}
	ev := q.ImageEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		Folder:     string(storage.FolderEvents),
		EntityID:   img.EventID,
		ImageID:    img.ID,
		FileName:   img.FileName,
		ImageURL:   img.ImageURL,
		FileSize:   img.FileSize,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publish(ctx, ev); err != nil {
		log.Printf("event-image: publish %s event failed: %v", action, err)
	}
}
