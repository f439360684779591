package postgrest

import (
	"context"
	"errors"
	"strconv"

	"github.com/ssanjae/offline-store/internal/clients/http/postgrest"
	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// productColumns is the exact products projection the storefront reads. Tags only
// exist in the local Postgres and fixture sources.
var (
	productColumns    = []string{"id", "sort_order", "name", "price", "stock", "is_active", "thumbnail_url"}
	pickupDateColumns = []string{"id", "pickup_date", "is_open", "label"}
	noticeColumns     = []string{"id", "title", "body", "is_active", "published_at"}
)

// Repository reads the catalog through the hosted table-query service.
type Repository struct {
	client *postgrest.TableClient
}

func NewRepository(client *postgrest.TableClient) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	rows, err := r.client.Products(ctx, postgrest.Query{
		Columns: productColumns,
		Order:   []postgrest.Sort{postgrest.Asc("sort_order"), postgrest.Asc("id")},
	})
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, productFromRow(row))
	}
	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	rows, err := r.client.Products(ctx, postgrest.Query{
		Columns: productColumns,
		Filters: []postgrest.Filter{postgrest.Eq("id", strconv.FormatInt(id, 10))},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	return productFromRow(rows[0]), nil
}

func (r *Repository) ListOpenPickupDates(ctx context.Context) ([]*domain.PickupDate, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	rows, err := r.client.PickupDates(ctx, postgrest.Query{
		Columns: pickupDateColumns,
		Filters: []postgrest.Filter{postgrest.Eq("is_open", "true")},
		Order:   []postgrest.Sort{postgrest.Asc("pickup_date"), postgrest.Asc("id")},
	})
	if err != nil {
		return nil, err
	}
	dates := make([]*domain.PickupDate, 0, len(rows))
	for _, row := range rows {
		date, err := domain.ParseDate(row.PickupDate)
		if err != nil {
			return nil, err
		}
		d := &domain.PickupDate{ID: row.Id, Date: date, IsOpen: row.IsOpen}
		if row.Label != nil {
			d.Label = *row.Label
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (r *Repository) ListNotices(ctx context.Context) ([]*domain.Notice, error) {
	if err := r.ensureClient(); err != nil {
		return nil, err
	}
	rows, err := r.client.Notices(ctx, postgrest.Query{
		Columns: noticeColumns,
		Filters: []postgrest.Filter{postgrest.Eq("is_active", "true")},
		Order:   []postgrest.Sort{postgrest.Desc("published_at"), postgrest.Desc("id")},
	})
	if err != nil {
		return nil, err
	}
	notices := make([]*domain.Notice, 0, len(rows))
	for _, row := range rows {
		n := &domain.Notice{ID: row.Id, Title: row.Title, IsActive: row.IsActive, PublishedAt: row.PublishedAt}
		if row.Body != nil {
			n.Body = *row.Body
		}
		notices = append(notices, n)
	}
	return notices, nil
}

func (r *Repository) ensureClient() error {
	if r == nil || r.client == nil {
		return errors.New("table-query catalog repository not configured")
	}
	return nil
}

func productFromRow(row postgrest.Products) *domain.Product {
	return &domain.Product{
		ID:           row.Id,
		SortOrder:    row.SortOrder,
		Name:         row.Name,
		Price:        row.Price,
		Stock:        row.Stock,
		IsActive:     row.IsActive,
		ThumbnailURL: row.ThumbnailUrl,
	}
}
