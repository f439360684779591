package mapper

import (
	cartports "github.com/ssanjae/offline-store/internal/domains/cart/ports"
)

// Line is the JSON shape of a cart entry.
type Line struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice *int64 `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Cart is the JSON shape of the session cart.
type Cart struct {
	Lines         []Line  `json:"lines"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalPrice    int64   `json:"totalPrice"`
	PickupDate    *string `json:"pickupDate"`
	SummaryOpen   bool    `json:"summaryOpen"`
}

// QuantityRequest is the body of PUT /api/cart/items/:productId.
type QuantityRequest struct {
	Quantity *int64 `json:"quantity" binding:"required"`
}

// PickupDateRequest is the body of PUT /api/cart/pickup-date. Empty clears.
type PickupDateRequest struct {
	Date string `json:"date"`
}

func FromView(view *cartports.View) Cart {
	out := Cart{Lines: []Line{}}
	if view == nil {
		return out
	}
	for _, line := range view.Lines {
		if line.Product == nil {
			continue
		}
		out.Lines = append(out.Lines, Line{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}
	out.TotalQuantity = view.TotalQuantity
	out.TotalPrice = view.TotalPrice
	if view.PickupDate != "" {
		date := view.PickupDate
		out.PickupDate = &date
	}
	out.SummaryOpen = view.SummaryOpen
	return out
}
