package application

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

// Service orchestrates catalog reads.
type Service struct {
	repo ports.Repository
}

// NewService wires the catalog service. A nil repository behaves as unconfigured.
func NewService(repo ports.Repository) *Service {
	if repo == nil {
		repo = ports.UnconfiguredRepository
	}
	return &Service{repo: repo}
}

// ListProducts returns every product in display order.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// GetProduct loads one product.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, mapError(domain.ErrInvalidProductID)
	}
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// ListOpenPickupDates returns the dates customers may choose.
func (s *Service) ListOpenPickupDates(ctx context.Context) ([]*domain.PickupDate, error) {
	dates, err := s.repo.ListOpenPickupDates(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return dates, nil
}

// ListNotices returns active notices.
func (s *Service) ListNotices(ctx context.Context) ([]*domain.Notice, error) {
	notices, err := s.repo.ListNotices(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return notices, nil
}

// Storefront issues the three catalog-screen reads concurrently. A failing read is
// reported in its own section and never hides the others; only cancellation of ctx
// fails the whole call.
func (s *Service) Storefront(ctx context.Context) (*ports.Storefront, error) {
	var front ports.Storefront
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		front.Products.Rows, front.Products.Err = s.ListProducts(gctx)
		return cancellation(front.Products.Err)
	})
	g.Go(func() error {
		front.PickupDates.Rows, front.PickupDates.Err = s.ListOpenPickupDates(gctx)
		return cancellation(front.PickupDates.Err)
	})
	g.Go(func() error {
		front.Notices.Rows, front.Notices.Err = s.ListNotices(gctx)
		return cancellation(front.Notices.Err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &front, nil
}

func cancellation(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
