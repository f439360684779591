package mapper

import (
	"time"

	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

// Product is the JSON shape of a catalog row.
type Product struct {
	ID           int64    `json:"id"`
	SortOrder    *int     `json:"sortOrder"`
	Name         string   `json:"name"`
	Price        *int64   `json:"price"`
	Stock        *int64   `json:"stock"`
	IsActive     bool     `json:"isActive"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Tags         []string `json:"tags"`
}

// PickupDate is the JSON shape of an open pickup date.
type PickupDate struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Label string `json:"label"`
}

// Notice is the JSON shape of a site notice.
type Notice struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
}

func FromDomainProduct(p *catalogdomain.Product) Product {
	if p == nil {
		return Product{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Product{
		ID:           p.ID,
		SortOrder:    p.SortOrder,
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		IsActive:     p.Active(),
		ThumbnailURL: p.ThumbnailURL,
		Tags:         tags,
	}
}

func FromDomainProducts(list []*catalogdomain.Product) []Product {
	result := make([]Product, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainProduct(p))
	}
	return result
}

func FromDomainPickupDates(list []*catalogdomain.PickupDate) []PickupDate {
	result := make([]PickupDate, 0, len(list))
	for _, d := range list {
		result = append(result, PickupDate{ID: d.ID, Date: d.Key(), Label: d.DisplayLabel()})
	}
	return result
}

func FromDomainNotices(list []*catalogdomain.Notice) []Notice {
	result := make([]Notice, 0, len(list))
	for _, n := range list {
		result = append(result, Notice{ID: n.ID, Title: n.Title, Body: n.Body, PublishedAt: n.PublishedAt})
	}
	return result
}
