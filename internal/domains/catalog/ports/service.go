package ports

import (
	"context"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Section holds the outcome of one independent storefront read.
type Section[T any] struct {
	Rows []T
	Err  error
}

// Failed reports whether the read returned an error.
func (s Section[T]) Failed() bool { return s.Err != nil }

// ErrorMessage is the message shown to customers for a failed read.
func (s Section[T]) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Storefront aggregates the three catalog-screen reads.
type Storefront struct {
	Products    Section[*domain.Product]
	PickupDates Section[*domain.PickupDate]
	Notices     Section[*domain.Notice]
}

// Service exposes catalog use cases to adapters.
type Service interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListOpenPickupDates(ctx context.Context) ([]*domain.PickupDate, error)
	ListNotices(ctx context.Context) ([]*domain.Notice, error)
	Storefront(ctx context.Context) (*Storefront, error)
}
