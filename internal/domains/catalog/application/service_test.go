package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

type fakeCatalogRepo struct {
	products    []*domain.Product
	pickupDates []*domain.PickupDate
	notices     []*domain.Notice

	productsErr error
	datesErr    error
	noticesErr  error
}

func (f *fakeCatalogRepo) ListProducts(_ context.Context) ([]*domain.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.products, nil
}

func (f *fakeCatalogRepo) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCatalogRepo) ListOpenPickupDates(_ context.Context) ([]*domain.PickupDate, error) {
	if f.datesErr != nil {
		return nil, f.datesErr
	}
	return f.pickupDates, nil
}

func (f *fakeCatalogRepo) ListNotices(_ context.Context) ([]*domain.Notice, error) {
	if f.noticesErr != nil {
		return nil, f.noticesErr
	}
	return f.notices, nil
}

func TestStorefront_LoadsAllSections(t *testing.T) {
	repo := &fakeCatalogRepo{
		products:    []*domain.Product{{ID: 1, Name: "떡"}},
		pickupDates: []*domain.PickupDate{{ID: 1, Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), IsOpen: true}},
		notices:     []*domain.Notice{{ID: 1, Title: "공지", IsActive: true}},
	}
	svc := NewService(repo)

	front, err := svc.Storefront(context.Background())
	require.NoError(t, err)
	require.Len(t, front.Products.Rows, 1)
	require.Len(t, front.PickupDates.Rows, 1)
	require.Len(t, front.Notices.Rows, 1)
	require.False(t, front.Products.Failed())
}

func TestStorefront_SectionErrorsAreIndependent(t *testing.T) {
	repo := &fakeCatalogRepo{
		products:   []*domain.Product{{ID: 1, Name: "떡"}},
		datesErr:   errors.New(`relation "pickup_dates" does not exist`),
		noticesErr: errors.New("permission denied for table notices"),
	}
	svc := NewService(repo)

	front, err := svc.Storefront(context.Background())
	require.NoError(t, err)
	require.Len(t, front.Products.Rows, 1)
	require.True(t, front.PickupDates.Failed())
	require.Equal(t, `relation "pickup_dates" does not exist`, front.PickupDates.ErrorMessage())
	require.Equal(t, "permission denied for table notices", front.Notices.ErrorMessage())
}

func TestStorefront_CancelledContextFails(t *testing.T) {
	repo := &fakeCatalogRepo{productsErr: context.Canceled}
	svc := NewService(repo)

	_, err := svc.Storefront(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewService_NilRepositoryIsUnconfigured(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.ListProducts(context.Background())
	require.ErrorIs(t, err, ports.ErrNotConfigured)

	front, err := svc.Storefront(context.Background())
	require.NoError(t, err)
	require.ErrorIs(t, front.Products.Err, ports.ErrNotConfigured)
	require.ErrorIs(t, front.PickupDates.Err, ports.ErrNotConfigured)
	require.ErrorIs(t, front.Notices.Err, ports.ErrNotConfigured)
}

func TestGetProduct_InvalidID(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{})

	_, err := svc.GetProduct(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidProductID)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{})

	_, err := svc.GetProduct(context.Background(), 7)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
