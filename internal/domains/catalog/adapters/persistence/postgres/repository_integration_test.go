//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	"github.com/ssanjae/offline-store/internal/domains/catalog/ports"
	"github.com/ssanjae/offline-store/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func ptr[T any](v T) *T { return &v }

func seedSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Products: []*domain.Product{
			{ID: 3, Name: "no order", Price: ptr(int64(1000))},
			{ID: 2, SortOrder: ptr(1), Name: "인절미", Price: ptr(int64(4500)), Stock: ptr(int64(3)), Tags: []string{"떡", "인기"}},
			{ID: 1, SortOrder: ptr(2), Name: "쑥떡", IsActive: ptr(false)},
		},
		PickupDates: []*domain.PickupDate{
			{ID: 1, Date: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), IsOpen: true},
			{ID: 2, Date: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), IsOpen: true, Label: "금요일"},
			{ID: 3, Date: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), IsOpen: false},
		},
		Notices: []*domain.Notice{
			{ID: 1, Title: "old", IsActive: true, PublishedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Title: "new", IsActive: true, PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, Title: "hidden", IsActive: false, PublishedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestRepository_SeedAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, seedSnapshot()))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{products[0].ID, products[1].ID, products[2].ID})
	assert.Equal(t, []string{"떡", "인기"}, products[0].Tags)
	assert.False(t, products[1].Active())
	assert.Nil(t, products[2].Stock)

	dates, err := repo.ListOpenPickupDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2024-05-03", dates[0].Key())
	assert.Equal(t, "금요일", dates[0].DisplayLabel())
	assert.Equal(t, "2024-05-04", dates[1].Key())

	notices, err := repo.ListNotices(ctx)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "new", notices[0].Title)
	assert.Equal(t, "old", notices[1].Title)
}

func TestRepository_SeedIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	snapshot := seedSnapshot()
	require.NoError(t, repo.Seed(ctx, snapshot))

	snapshot.Products[1].Stock = ptr(int64(0))
	require.NoError(t, repo.Seed(ctx, snapshot))

	product, err := repo.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), product.AvailableStock())

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestRepository_GetProductNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	_, err := NewRepository(db).GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
