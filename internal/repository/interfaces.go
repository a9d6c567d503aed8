package repository

import (
	"context"

	"github.com/giarts/atelie-api/internal/model"
)

// UserStore persists user accounts and their role assignments.
type UserStore interface {
	// Create inserts a user with the given role attached and returns its id.
	// The password is hashed with bcrypt at the given cost before storage.
	Create(ctx context.Context, name, email, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	// Update replaces name, email and password (re-hashed) of an existing user.
	Update(ctx context.Context, id uint64, name, email, password string, cost int) (*model.User, error)
	Delete(ctx context.Context, id uint64) error
}

// ProductStore persists catalog products.
type ProductStore interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint64) error
	Exists(ctx context.Context, id uint64) (bool, error)
}

// EventStore persists catalog events.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id uint64) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id uint64) error
	Exists(ctx context.Context, id uint64) (bool, error)
}

// ProductImageStore persists product image metadata rows.
type ProductImageStore interface {
	Insert(ctx context.Context, img *model.ProductImage) error
	GetByID(ctx context.Context, imageID uint64) (*model.ProductImage, error)
	ListByProduct(ctx context.Context, productID uint64) ([]*model.ProductImage, error)
	Delete(ctx context.Context, imageID uint64) error
}

// EventImageStore persists event image metadata rows.
type EventImageStore interface {
	Insert(ctx context.Context, img *model.EventImage) error
	GetByID(ctx context.Context, imageID uint64) (*model.EventImage, error)
	ListByEvent(ctx context.Context, eventID uint64) ([]*model.EventImage, error)
	Delete(ctx context.Context, imageID uint64) error
}
