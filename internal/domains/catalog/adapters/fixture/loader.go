// Package fixture loads a catalog snapshot from a YAML file and keeps an in-memory
// catalog in sync with it.
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
)

type file struct {
	Products    []productEntry    `yaml:"products"`
	PickupDates []pickupDateEntry `yaml:"pickup_dates"`
	Notices     []noticeEntry     `yaml:"notices"`
}

type productEntry struct {
	ID           int64    `yaml:"id"`
	SortOrder    *int     `yaml:"sort_order"`
	Name         string   `yaml:"name"`
	Price        *int64   `yaml:"price"`
	Stock        *int64   `yaml:"stock"`
	IsActive     *bool    `yaml:"is_active"`
	ThumbnailURL *string  `yaml:"thumbnail_url"`
	Tags         []string `yaml:"tags"`
}

type pickupDateEntry struct {
	ID     int64  `yaml:"id"`
	Date   string `yaml:"date"`
	IsOpen bool   `yaml:"is_open"`
	Label  string `yaml:"label"`
}

type noticeEntry struct {
	ID          int64     `yaml:"id"`
	Title       string    `yaml:"title"`
	Body        string    `yaml:"body"`
	IsActive    *bool     `yaml:"is_active"`
	PublishedAt time.Time `yaml:"published_at"`
}

// Load reads and validates the fixture at path.
func Load(path string) (*domain.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog fixture: %w", err)
	}
	snapshot, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}

// Parse decodes a fixture document. Unknown keys are rejected so typos surface early.
func Parse(r io.Reader) (*domain.Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc file
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog fixture: %w", err)
	}

	snapshot := &domain.Snapshot{}
	for _, p := range doc.Products {
		snapshot.Products = append(snapshot.Products, &domain.Product{
			ID:           p.ID,
			SortOrder:    p.SortOrder,
			Name:         p.Name,
			Price:        p.Price,
			Stock:        p.Stock,
			IsActive:     p.IsActive,
			ThumbnailURL: p.ThumbnailURL,
			Tags:         p.Tags,
		})
	}
	for _, d := range doc.PickupDates {
		date, err := domain.ParseDate(d.Date)
		if err != nil {
			return nil, fmt.Errorf("pickup date %d: %w", d.ID, err)
		}
		snapshot.PickupDates = append(snapshot.PickupDates, &domain.PickupDate{
			ID:     d.ID,
			Date:   date,
			IsOpen: d.IsOpen,
			Label:  d.Label,
		})
	}
	for _, n := range doc.Notices {
		snapshot.Notices = append(snapshot.Notices, &domain.Notice{
			ID:          n.ID,
			Title:       n.Title,
			Body:        n.Body,
			IsActive:    n.IsActive == nil || *n.IsActive,
			PublishedAt: n.PublishedAt,
		})
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
