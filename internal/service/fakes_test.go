package service

import (
	"context"
	"time"

	"github.com/giarts/atelie-api/internal/model"
	"github.com/giarts/atelie-api/internal/repository"
	"github.com/giarts/atelie-api/internal/utils"
)

// In-memory stores backing the service tests. They implement the repository
// interfaces over maps and mimic the sentinel errors of the real repos.

type fakeProductStore struct {
	products map[uint64]*model.Product
	nextID   uint64
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[uint64]*model.Product{}, nextID: 1}
}

func (f *fakeProductStore) Create(_ context.Context, p *model.Product) error {
	p.ID = f.nextID
	f.nextID++
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id uint64) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) List(_ context.Context) ([]*model.Product, error) {
	out := make([]*model.Product, 0, len(f.products))
	for id := uint64(1); id < f.nextID; id++ {
		if p, ok := f.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductStore) Update(_ context.Context, p *model.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

type fakeEventStore struct {
	events map[uint64]*model.Event
	nextID uint64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[uint64]*model.Event{}, nextID: 1}
}

func (f *fakeEventStore) Create(_ context.Context, e *model.Event) error {
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id uint64) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventStore) List(_ context.Context) ([]*model.Event, error) {
	out := make([]*model.Event, 0, len(f.events))
	for id := uint64(1); id < f.nextID; id++ {
		if e, ok := f.events[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEventStore) Update(_ context.Context, e *model.Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return repository.ErrEventNotFound
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventStore) Exists(_ context.Context, id uint64) (bool, error) {
	_, ok := f.events[id]
	return ok, nil
}

type fakeProductImageStore struct {
	images map[uint64]*model.ProductImage
	nextID uint64
}

func newFakeProductImageStore() *fakeProductImageStore {
	return &fakeProductImageStore{images: map[uint64]*model.ProductImage{}, nextID: 1}
}

func (f *fakeProductImageStore) Insert(_ context.Context, img *model.ProductImage) error {
	img.ID = f.nextID
	f.nextID++
	img.CreatedAt = time.Now().UTC()
	img.UpdatedAt = img.CreatedAt
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeProductImageStore) GetByID(_ context.Context, imageID uint64) (*model.ProductImage, error) {
	img, ok := f.images[imageID]
	if !ok {
		return nil, repository.ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeProductImageStore) ListByProduct(_ context.Context, productID uint64) ([]*model.ProductImage, error) {
	var out []*model.ProductImage
	for id := uint64(1); id < f.nextID; id++ {
		if img, ok := f.images[id]; ok && img.ProductID == productID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductImageStore) Delete(_ context.Context, imageID uint64) error {
	if _, ok := f.images[imageID]; !ok {
		return repository.ErrImageNotFound
	}
	delete(f.images, imageID)
	return nil
}

type fakeEventImageStore struct {
	images map[uint64]*model.EventImage
	nextID uint64
}

func newFakeEventImageStore() *fakeEventImageStore {
	return &fakeEventImageStore{images: map[uint64]*model.EventImage{}, nextID: 1}
}

func (f *fakeEventImageStore) Insert(_ context.Context, img *model.EventImage) error {
	img.ID = f.nextID
	f.nextID++
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeEventImageStore) GetByID(_ context.Context, imageID uint64) (*model.EventImage, error) {
	img, ok := f.images[imageID]
	if !ok {
		return nil, repository.ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeEventImageStore) ListByEvent(_ context.Context, eventID uint64) ([]*model.EventImage, error) {
	var out []*model.EventImage
	for id := uint64(1); id < f.nextID; id++ {
		if img, ok := f.images[id]; ok && img.EventID == eventID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEventImageStore) Delete(_ context.Context, imageID uint64) error {
	if _, ok := f.images[imageID]; !ok {
		return repository.ErrImageNotFound
	}
	delete(f.images, imageID)
	return nil
}

type fakeUserStore struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint64]*model.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, name, email, password, role string, cost int) (uint64, error) {
	for _, u := range f.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	id := f.nextID
	f.nextID++
	f.users[id] = &model.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        []string{role},
	}
	return id, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(f.users))
	for id := uint64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, id uint64, name, email, password string, cost int) (*model.User, error) {
	u, ok := f.users[id]
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
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}
