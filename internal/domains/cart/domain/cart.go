package domain

import (
	"errors"
	"maps"
	"strings"
)

var (
	ErrInvalidProductID   = errors.New("product id must be greater than zero")
	ErrNegativeQuantity   = errors.New("quantity must not be negative")
	ErrProductUnavailable = errors.New("product is not on sale")
	ErrPickupDateClosed   = errors.New("pickup date is not open for orders")
	ErrEmptyCartID        = errors.New("cart id is required")
)

// Cart is the per-session selection. Every entry satisfies 1 <= quantity <= stock
// at the time it was last changed.
type Cart struct {
	ID          string
	Items       map[int64]int64
	PickupDate  string
	SummaryOpen bool
}

// NewCart returns an empty cart for the session id.
func NewCart(id string) (*Cart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyCartID
	}
	return &Cart{ID: id, Items: map[int64]int64{}}, nil
}

// Quantity of productID in the cart; zero when absent.
func (c *Cart) Quantity(productID int64) int64 {
	return c.Items[productID]
}

// Increment adds one unit, never exceeding stock. It reports whether the cart changed.
func (c *Cart) Increment(productID, stock int64) (bool, error) {
	if productID <= 0 {
		return false, ErrInvalidProductID
	}
	current := c.Quantity(productID)
	return c.set(productID, min(current+1, max(stock, 0))), nil
}

// Decrement removes one unit; an entry that reaches zero is deleted.
func (c *Cart) Decrement(productID int64) (bool, error) {
	if productID <= 0 {
		return false, ErrInvalidProductID
	}
	current := c.Quantity(productID)
	if current == 0 {
		return false, nil
	}
	return c.set(productID, current-1), nil
}

// SetQuantity clamps quantity to [0, stock]; zero deletes the entry.
func (c *Cart) SetQuantity(productID, quantity, stock int64) (bool, error) {
	if productID <= 0 {
		return false, ErrInvalidProductID
	}
	if quantity < 0 {
		return false, ErrNegativeQuantity
	}
	return c.set(productID, min(quantity, max(stock, 0))), nil
}

// Remove deletes the entry for productID.
func (c *Cart) Remove(productID int64) bool {
	return c.set(productID, 0)
}

// SelectPickupDate stores the selected date key; empty clears the selection.
func (c *Cart) SelectPickupDate(key string) {
	c.PickupDate = strings.TrimSpace(key)
}

// ToggleSummary opens or closes the cart modal.
func (c *Cart) ToggleSummary(open bool) {
	c.SummaryOpen = open
}

// Clear empties the cart and forgets the selected date.
func (c *Cart) Clear() {
	c.Items = map[int64]int64{}
	c.PickupDate = ""
	c.SummaryOpen = false
}

// TotalQuantity sums every entry.
func (c *Cart) TotalQuantity() int64 {
	var total int64
	for _, q := range c.Items {
		total += q
	}
	return total
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Items = maps.Clone(c.Items)
	if clone.Items == nil {
		clone.Items = map[int64]int64{}
	}
	return &clone
}

func (c *Cart) set(productID, quantity int64) bool {
	if c.Items == nil {
		c.Items = map[int64]int64{}
	}
	current, ok := c.Items[productID]
	if quantity <= 0 {
		if !ok {
			return false
		}
		delete(c.Items, productID)
		return true
	}
	if ok && current == quantity {
		return false
	}
	c.Items[productID] = quantity
	return true
}
