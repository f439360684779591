package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/ssanjae/offline-store/internal/domains/cart/domain"
	"github.com/ssanjae/offline-store/internal/domains/cart/ports"
	"github.com/ssanjae/offline-store/internal/shared/keylock"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps carts in process memory. Carts are never written to the data store.
type Repository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
	// locks serializes Update and Move per cart id; mu only guards the map.
	locks *keylock.Striped
}

func NewRepository() *Repository {
	return &Repository{carts: map[string]*domain.Cart{}, locks: keylock.New(0)}
}

func (r *Repository) Get(_ context.Context, id string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cart.Clone(), nil
}

func (r *Repository) Save(_ context.Context, cart *domain.Cart) error {
	if cart == nil {
		return errors.New("cart is nil")
	}
	if cart.ID == "" {
		return domain.ErrEmptyCartID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart.Empty() && cart.PickupDate == "" && !cart.SummaryOpen {
		delete(r.carts, cart.ID)
		return nil
	}
	r.carts[cart.ID] = cart.Clone()
	return nil
}

// Update runs fn on the cart for id, or on a new empty cart, while holding the id's
// lock. The cart is saved only when fn reports a change and returns no error.
func (r *Repository) Update(ctx context.Context, id string, fn func(*domain.Cart) (bool, error)) error {
	cart, err := domain.NewCart(id)
	if err != nil {
		return err
	}
	unlock := r.locks.Lock(id)
	defer unlock()

	current, err := r.Get(ctx, id)
	switch {
	case err == nil:
		cart = current
	case !errors.Is(err, ports.ErrNotFound):
		return err
	}
	changed, err := fn(cart)
	if err != nil || !changed {
		return err
	}
	return r.Save(ctx, cart)
}

// Move re-keys the cart held under from to to, replacing whatever to held.
// Nothing happens when from has no cart.
func (r *Repository) Move(_ context.Context, from, to string) error {
	if to == "" {
		return domain.ErrEmptyCartID
	}
	if from == to {
		return nil
	}
	unlock := r.locks.LockPair(from, to)
	defer unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[from]
	if !ok {
		return nil
	}
	delete(r.carts, from)
	cart.ID = to
	r.carts[to] = cart
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
	return nil
}

// Retain drops carts whose id fails keep, e.g. after their sessions were purged.
func (r *Repository) Retain(keep func(id string) bool) int {
	r.mu.RLock()
	ids := make([]string, 0, len(r.carts))
	for id := range r.carts {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	dropped := 0
	for _, id := range ids {
		if keep(id) {
			continue
		}
		r.mu.Lock()
		if _, ok := r.carts[id]; ok {
			delete(r.carts, id)
			dropped++
		}
		r.mu.Unlock()
	}
	return dropped
}

// Len reports how many carts are held.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
