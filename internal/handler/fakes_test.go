package handler_test

import (
	"context"
	"time"

	"github.com/giarts/atelie-api/internal/model"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/utils"
)

// Map-backed stores implementing the repository interfaces for the HTTP
// tests. They reproduce the sentinel errors of the SQL repositories.

type memUserStore struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uint64]*model.User{}, nextID: 1}
}

func (m *memUserStore) Create(_ context.Context, name, email, password, role string, cost int) (uint64, error) {
	for _, u := range m.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	id := m.nextID
	m.nextID++
	now := time.Now().UTC()
	m.users[id] = &model.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        []string{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) List(_ context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(m.users))
	for id := uint64(1); id < m.nextID; id++ {
		if u, ok := m.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memUserStore) Update(_ context.Context, id uint64, name, email, password string, cost int) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = hash
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (m *memUserStore) Delete(_ context.Context, id uint64) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type memProductStore struct {
	products map[uint64]*model.Product
	images   *memProductImageStore
	nextID   uint64
}

// newMemProductStore wires the image store so Delete cascades into it the
// way the product_images foreign key does.
func newMemProductStore(images *memProductImageStore) *memProductStore {
	return &memProductStore{products: map[uint64]*model.Product{}, images: images, nextID: 1}
}

func (m *memProductStore) Create(_ context.Context, p *model.Product) error {
	p.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductStore) GetByID(_ context.Context, id uint64) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProductStore) List(_ context.Context) ([]*model.Product, error) {
	out := make([]*model.Product, 0, len(m.products))
	for id := uint64(1); id < m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProductStore) Update(_ context.Context, p *model.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProductStore) Delete(_ context.Context, id uint64) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	m.images.deleteByProduct(id)
	return nil
}

func (m *memProductStore) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := m.products[id]
	return ok, nil
}

type memEventStore struct {
	events map[uint64]*model.Event
	images *memEventImageStore
	nextID uint64
}

func newMemEventStore(images *memEventImageStore) *memEventStore {
	return &memEventStore{events: map[uint64]*model.Event{}, images: images, nextID: 1}
}

func (m *memEventStore) Create(_ context.Context, e *model.Event) error {
	e.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventStore) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memEventStore) List(_ context.Context) ([]*model.Event, error) {
	out := make([]*model.Event, 0, len(m.events))
	for id := uint64(1); id < m.nextID; id++ {
		if e, ok := m.events[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEventStore) Update(_ context.Context, e *model.Event) error {
	if _, ok := m.events[e.ID]; !ok {
		return repository.ErrEventNotFound
	}
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventStore) Delete(_ context.Context, id uint64) error {
	if _, ok := m.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(m.events, id)
	m.images.deleteByEvent(id)
	return nil
}

func (m *memEventStore) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := m.events[id]
	return ok, nil
}

type memProductImageStore struct {
	images map[uint64]*model.ProductImage
	nextID uint64
}

func newMemProductImageStore() *memProductImageStore {
	return &memProductImageStore{images: map[uint64]*model.ProductImage{}, nextID: 1}
}

func (m *memProductImageStore) Insert(_ context.Context, img *model.ProductImage) error {
	img.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	img.CreatedAt = now
	img.UpdatedAt = now
	cp := *img
	m.images[img.ID] = &cp
	return nil
}

func (m *memProductImageStore) GetByID(_ context.Context, imageID uint64) (*model.ProductImage, error) {
	img, ok := m.images[imageID]
	if !ok {
		return nil, repository.ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (m *memProductImageStore) ListByProduct(_ context.Context, productID uint64) ([]*model.ProductImage, error) {
	var out []*model.ProductImage
	for id := uint64(1); id < m.nextID; id++ {
		if img, ok := m.images[id]; ok && img.ProductID == productID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProductImageStore) Delete(_ context.Context, imageID uint64) error {
	if _, ok := m.images[imageID]; !ok {
		return repository.ErrImageNotFound
	}
	delete(m.images, imageID)
	return nil
}

func (m *memProductImageStore) deleteByProduct(productID uint64) {
	for id, img := range m.images {
		if img.ProductID == productID {
			delete(m.images, id)
		}
	}
}

type memEventImageStore struct {
	images map[uint64]*model.EventImage
	nextID uint64
}

func newMemEventImageStore() *memEventImageStore {
	return &memEventImageStore{images: map[uint64]*model.EventImage{}, nextID: 1}
}

func (m *memEventImageStore) Insert(_ context.Context, img *model.EventImage) error {
	img.ID = m.nextID
	m.nextID++
	now := time.Now().UTC()
	img.CreatedAt = now
	img.UpdatedAt = now
	cp := *img
	m.images[img.ID] = &cp
	return nil
}

func (m *memEventImageStore) GetByID(_ context.Context, imageID uint64) (*model.EventImage, error) {
	img, ok := m.images[imageID]
	if !ok {
		return nil, repository.ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (m *memEventImageStore) ListByEvent(_ context.Context, eventID uint64) ([]*model.EventImage, error) {
	var out []*model.EventImage
	for id := uint64(1); id < m.nextID; id++ {
		if img, ok := m.images[id]; ok && img.EventID == eventID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEventImageStore) Delete(_ context.Context, imageID uint64) error {
	if _, ok := m.images[imageID]; !ok {
		return repository.ErrImageNotFound
	}
	delete(m.images, imageID)
	return nil
}

func (m *memEventImageStore) deleteByEvent(eventID uint64) {
	for id, img := range m.images {
		if img.EventID == eventID {
			delete(m.images, id)
		}
	}
}
