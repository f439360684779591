package ports

import (
	"context"

	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Catalog is the read side of the catalog context the cart bounds itself against.
type Catalog interface {
	GetProduct(ctx context.Context, id int64) (*catalogdomain.Product, error)
	ListProducts(ctx context.Context) ([]*catalogdomain.Product, error)
	ListOpenPickupDates(ctx context.Context) ([]*catalogdomain.PickupDate, error)
}
