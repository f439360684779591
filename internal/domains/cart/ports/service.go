package ports

import (
	"context"

	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Line is one cart entry joined with its product.
type Line struct {
	Product  *catalogdomain.Product
	Quantity int64
	Subtotal int64
}

// View is the cart as the storefront renders it.
type View struct {
	Lines         []Line
	TotalQuantity int64
	TotalPrice    int64
	PickupDate    string
	SummaryOpen   bool
}

// Service exposes cart use cases to adapters. id is the session token.
type Service interface {
	View(ctx context.Context, id string) (*View, error)
	Increment(ctx context.Context, id string, productID int64) (*View, error)
	Decrement(ctx context.Context, id string, productID int64) (*View, error)
	SetQuantity(ctx context.Context, id string, productID, quantity int64) (*View, error)
	Remove(ctx context.Context, id string, productID int64) (*View, error)
	SelectPickupDate(ctx context.Context, id, date string) (*View, error)
	ToggleSummary(ctx context.Context, id string, open bool) (*View, error)
	Clear(ctx context.Context, id string) error
	// Move carries the cart over when a session token is reissued.
	Move(ctx context.Context, from, to string) error
}
