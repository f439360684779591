package ports

import (
	"context"
	"errors"

	"github.com/ssanjae/offline-store/internal/domains/cart/domain"
)

var ErrNotFound = errors.New("cart not found")

// Repository holds carts for live sessions.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, id string) error
	// Update applies fn to the cart for id atomically with respect to other
	// Update and Move calls on the same id. A missing cart starts empty.
	Update(ctx context.Context, id string, fn func(*domain.Cart) (bool, error)) error
	// Move hands the cart of one session token to another.
	Move(ctx context.Context, from, to string) error
}
