package domain

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrEmptyProductName = errors.New("product name is required")
)

// Product is a catalog row as stored remotely. Nullable columns stay pointers so the
// views can tell "unknown" apart from zero.
type Product struct {
	ID           int64
	SortOrder    *int
	Name         string
	Price        *int64
	Stock        *int64
	IsActive     *bool
	ThumbnailURL *string
	Tags         []string
}

// Validate checks the fields a fixture or seed must carry.
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	return nil
}

// Active reports whether the product can be put in a cart. A missing flag counts as active.
func (p *Product) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// AvailableStock is the upper bound for cart quantities. Unknown stock is zero.
func (p *Product) AvailableStock() int64 {
	if p.Stock == nil || *p.Stock < 0 {
		return 0
	}
	return *p.Stock
}

// UnitPrice returns the price or zero when the price is unknown.
func (p *Product) UnitPrice() int64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// PriceLabel renders the price the way the storefront shows it ("-" when unknown).
func (p *Product) PriceLabel() string {
	return optionalLabel(p.Price)
}

// StockLabel renders the stock count ("-" when unknown).
func (p *Product) StockLabel() string {
	return optionalLabel(p.Stock)
}

// Thumbnail returns the thumbnail URL or an empty string.
func (p *Product) Thumbnail() string {
	if p.ThumbnailURL == nil {
		return ""
	}
	return *p.ThumbnailURL
}

// Clone returns a deep copy.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	if p.SortOrder != nil {
		v := *p.SortOrder
		clone.SortOrder = &v
	}
	if p.Price != nil {
		v := *p.Price
		clone.Price = &v
	}
	if p.Stock != nil {
		v := *p.Stock
		clone.Stock = &v
	}
	if p.IsActive != nil {
		v := *p.IsActive
		clone.IsActive = &v
	}
	if p.ThumbnailURL != nil {
		v := *p.ThumbnailURL
		clone.ThumbnailURL = &v
	}
	clone.Tags = append([]string(nil), p.Tags...)
	return &clone
}

// SortProducts orders products by sort_order ascending (nulls last), then id ascending.
func SortProducts(products []*Product) {
	slices.SortStableFunc(products, func(a, b *Product) int {
		switch {
		case a.SortOrder == nil && b.SortOrder != nil:
			return 1
		case a.SortOrder != nil && b.SortOrder == nil:
			return -1
		case a.SortOrder != nil && b.SortOrder != nil && *a.SortOrder != *b.SortOrder:
			return cmp.Compare(*a.SortOrder, *b.SortOrder)
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func optionalLabel(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
