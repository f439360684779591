package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads the catalog tables from PostgreSQL using GORM. Schema is owned by
// platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type productRecord struct {
	ID           int64          `gorm:"primaryKey;column:id"`
	SortOrder    *int           `gorm:"column:sort_order;index"`
	Name         string         `gorm:"column:name"`
	Price        *int64         `gorm:"column:price"`
	Stock        *int64         `gorm:"column:stock"`
	IsActive     *bool          `gorm:"column:is_active"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url"`
	Tags         pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

type pickupDateRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	PickupDate time.Time `gorm:"column:pickup_date;type:date;uniqueIndex"`
	IsOpen     bool      `gorm:"column:is_open;index"`
	Label      string    `gorm:"column:label"`
}

func (pickupDateRecord) TableName() string { return "pickup_dates" }

type noticeRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Title       string    `gorm:"column:title"`
	Body        string    `gorm:"column:body;type:text"`
	IsActive    bool      `gorm:"column:is_active;index"`
	PublishedAt time.Time `gorm:"column:published_at;index"`
}

func (noticeRecord) TableName() string { return "notices" }

// ListProducts returns all products ordered by sort_order (nulls last), then id.
func (r *Repository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC NULLS LAST").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

// GetProduct fetches a product by identifier.
func (r *Repository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// ListOpenPickupDates returns open pickup dates, earliest first.
func (r *Repository) ListOpenPickupDates(ctx context.Context) ([]*domain.PickupDate, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []pickupDateRecord
	if err := r.db.WithContext(ctx).
		Where("is_open = ?", true).
		Order("pickup_date ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	dates := make([]*domain.PickupDate, 0, len(records))
	for _, rec := range records {
		dates = append(dates, &domain.PickupDate{ID: rec.ID, Date: rec.PickupDate.UTC(), IsOpen: rec.IsOpen, Label: rec.Label})
	}
	return dates, nil
}

// ListNotices returns active notices, newest first.
func (r *Repository) ListNotices(ctx context.Context) ([]*domain.Notice, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []noticeRecord
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("published_at DESC").
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	notices := make([]*domain.Notice, 0, len(records))
	for _, rec := range records {
		notices = append(notices, &domain.Notice{
			ID:          rec.ID,
			Title:       rec.Title,
			Body:        rec.Body,
			IsActive:    rec.IsActive,
			PublishedAt: rec.PublishedAt,
		})
	}
	return notices, nil
}

// Seed upserts a catalog snapshot in one transaction. Used by the admin CLI; the
// storefront itself never writes catalog rows.
func (r *Repository) Seed(ctx context.Context, snapshot domain.Snapshot) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range snapshot.Products {
			rec := toProductRecord(p)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"sort_order", "name", "price", "stock", "is_active", "thumbnail_url", "tags", "updated_at"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}
		for _, d := range snapshot.PickupDates {
			rec := pickupDateRecord{ID: d.ID, PickupDate: d.Date, IsOpen: d.IsOpen, Label: d.Label}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"pickup_date", "is_open", "label"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}
		for _, n := range snapshot.Notices {
			rec := noticeRecord{ID: n.ID, Title: n.Title, Body: n.Body, IsActive: n.IsActive, PublishedAt: n.PublishedAt}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "body", "is_active", "published_at"}),
			}).Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toProductRecord(p *domain.Product) productRecord {
	return productRecord{
		ID:           p.ID,
		SortOrder:    p.SortOrder,
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		IsActive:     p.IsActive,
		ThumbnailURL: p.ThumbnailURL,
		Tags:         pq.StringArray(p.Tags),
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:           r.ID,
		SortOrder:    r.SortOrder,
		Name:         r.Name,
		Price:        r.Price,
		Stock:        r.Stock,
		IsActive:     r.IsActive,
		ThumbnailURL: r.ThumbnailURL,
		Tags:         []string(r.Tags),
	}
}
