package ports

import (
	"context"
	"errors"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrNotConfigured = errors.New("data store is not configured")
)

// ProductRepository reads catalog rows ordered by sort_order, then id.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// PickupDateRepository reads pickup dates already filtered to open entries.
type PickupDateRepository interface {
	ListOpenPickupDates(ctx context.Context) ([]*domain.PickupDate, error)
}

// NoticeRepository reads active site notices, newest first.
type NoticeRepository interface {
	ListNotices(ctx context.Context) ([]*domain.Notice, error)
}

// Repository is the full read surface of the remote data store.
type Repository interface {
	ProductRepository
	PickupDateRepository
	NoticeRepository
}

// UnconfiguredRepository answers every read with ErrNotConfigured.
var UnconfiguredRepository Repository = unconfiguredRepository{}

type unconfiguredRepository struct{}

func (unconfiguredRepository) ListProducts(context.Context) ([]*domain.Product, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredRepository) GetProduct(context.Context, int64) (*domain.Product, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredRepository) ListOpenPickupDates(context.Context) ([]*domain.PickupDate, error) {
	return nil, ErrNotConfigured
}

func (unconfiguredRepository) ListNotices(context.Context) ([]*domain.Notice, error) {
	return nil, ErrNotConfigured
}
