package application

import (
	"context"
	"errors"
	"strings"

	"github.com/ssanjae/offline-store/internal/domains/cart/domain"
	"github.com/ssanjae/offline-store/internal/domains/cart/ports"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Service orchestrates cart use cases against live catalog stock.
type Service struct {
	repo    ports.Repository
	catalog ports.Catalog
}

func NewService(repo ports.Repository, catalog ports.Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

func (s *Service) View(ctx context.Context, id string) (*ports.View, error) {
	cart, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// Increment adds one unit of an active product; at the stock bound it is a no-op.
func (s *Service) Increment(ctx context.Context, id string, productID int64) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		product, err := s.onSale(ctx, productID)
		if err != nil {
			return false, err
		}
		return cart.Increment(productID, product.AvailableStock())
	})
}

func (s *Service) Decrement(ctx context.Context, id string, productID int64) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		return cart.Decrement(productID)
	})
}

// SetQuantity clamps to the product's stock. Zero removes without a catalog lookup.
func (s *Service) SetQuantity(ctx context.Context, id string, productID, quantity int64) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		if quantity <= 0 {
			return cart.SetQuantity(productID, quantity, 0)
		}
		product, err := s.onSale(ctx, productID)
		if err != nil {
			return false, err
		}
		return cart.SetQuantity(productID, quantity, product.AvailableStock())
	})
}

func (s *Service) Remove(ctx context.Context, id string, productID int64) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		if productID <= 0 {
			return false, domain.ErrInvalidProductID
		}
		return cart.Remove(productID), nil
	})
}

// SelectPickupDate accepts only currently open dates. An empty date clears the selection.
func (s *Service) SelectPickupDate(ctx context.Context, id, date string) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		date = strings.TrimSpace(date)
		if date == "" {
			changed := cart.PickupDate != ""
			cart.SelectPickupDate("")
			return changed, nil
		}
		parsed, err := catalogdomain.ParseDate(date)
		if err != nil {
			return false, err
		}
		key := parsed.Format(catalogdomain.DateLayout)
		open, err := s.catalog.ListOpenPickupDates(ctx)
		if err != nil {
			return false, err
		}
		if !catalogdomain.ContainsDate(open, key) {
			return false, domain.ErrPickupDateClosed
		}
		changed := cart.PickupDate != key
		cart.SelectPickupDate(key)
		return changed, nil
	})
}

func (s *Service) ToggleSummary(ctx context.Context, id string, open bool) (*ports.View, error) {
	return s.mutate(ctx, id, func(cart *domain.Cart) (bool, error) {
		changed := cart.SummaryOpen != open
		cart.ToggleSummary(open)
		return changed, nil
	})
}

// Clear forgets the cart of a session, e.g. on login reset.
func (s *Service) Clear(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return mapError(domain.ErrEmptyCartID)
	}
	return s.repo.Delete(ctx, id)
}

// Move hands the cart under from to to. Empty from is a no-op.
func (s *Service) Move(ctx context.Context, from, to string) error {
	if strings.TrimSpace(to) == "" {
		return mapError(domain.ErrEmptyCartID)
	}
	if strings.TrimSpace(from) == "" {
		return nil
	}
	return s.repo.Move(ctx, from, to)
}

func (s *Service) onSale(ctx context.Context, productID int64) (*catalogdomain.Product, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidProductID
	}
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active() {
		return nil, domain.ErrProductUnavailable
	}
	return product, nil
}

// mutate applies fn under the cart's lock. The view is built before the save, so a
// failed catalog read returns an error with the cart left as it was.
func (s *Service) mutate(ctx context.Context, id string, fn func(*domain.Cart) (bool, error)) (*ports.View, error) {
	var (
		view    *ports.View
		viewErr error
	)
	err := s.repo.Update(ctx, id, func(cart *domain.Cart) (bool, error) {
		changed, err := fn(cart)
		if err != nil {
			return false, err
		}
		if view, viewErr = s.view(ctx, cart); viewErr != nil {
			return false, viewErr
		}
		return changed, nil
	})
	if viewErr != nil {
		return nil, viewErr
	}
	if err != nil {
		return nil, mapError(err)
	}
	return view, nil
}

func (s *Service) load(ctx context.Context, id string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		cart, err = domain.NewCart(id)
		return cart, mapError(err)
	}
	return cart, err
}

func (s *Service) view(ctx context.Context, cart *domain.Cart) (*ports.View, error) {
	if cart.Empty() {
		return Summarize(cart, nil), nil
	}
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(cart, products), nil
}

// Summarize joins cart entries with products in catalog order. Entries whose product
// is no longer listed are left out; nil prices count as zero.
func Summarize(cart *domain.Cart, products []*catalogdomain.Product) *ports.View {
	view := &ports.View{Lines: []ports.Line{}}
	if cart == nil {
		return view
	}
	view.PickupDate = cart.PickupDate
	view.SummaryOpen = cart.SummaryOpen
	for _, product := range products {
		if product == nil {
			continue
		}
		quantity := cart.Quantity(product.ID)
		if quantity <= 0 {
			continue
		}
		subtotal := quantity * product.UnitPrice()
		view.Lines = append(view.Lines, ports.Line{Product: product, Quantity: quantity, Subtotal: subtotal})
		view.TotalQuantity += quantity
		view.TotalPrice += subtotal
	}
	return view
}

var _ ports.Service = (*Service)(nil)
