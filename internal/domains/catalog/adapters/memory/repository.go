package memory

import (
	"context"
	"sync"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog used for fixtures, development and tests.
type Repository struct {
	mu          sync.RWMutex
	products    map[int64]*domain.Product
	pickupDates []*domain.PickupDate
	notices     []*domain.Notice
}

func NewRepository() *Repository {
	return &Repository{products: map[int64]*domain.Product{}}
}

// Replace swaps the whole catalog atomically.
func (r *Repository) Replace(snapshot domain.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	products := make(map[int64]*domain.Product, len(snapshot.Products))
	for _, p := range snapshot.Products {
		if p != nil {
			products[p.ID] = p.Clone()
		}
	}
	dates := make([]*domain.PickupDate, 0, len(snapshot.PickupDates))
	for _, d := range snapshot.PickupDates {
		if d != nil {
			copy := *d
			dates = append(dates, &copy)
		}
	}
	notices := make([]*domain.Notice, 0, len(snapshot.Notices))
	for _, n := range snapshot.Notices {
		if n != nil {
			copy := *n
			notices = append(notices, &copy)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = products
	r.pickupDates = dates
	r.notices = notices
	return nil
}

func (r *Repository) ListProducts(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p.Clone())
	}
	domain.SortProducts(list)
	return list, nil
}

func (r *Repository) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *Repository) ListOpenPickupDates(_ context.Context) ([]*domain.PickupDate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.OpenPickupDates(r.pickupDates), nil
}

func (r *Repository) ListNotices(_ context.Context) ([]*domain.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.ActiveNotices(r.notices), nil
}
