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

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
	"github.com/ssanjae/offline-store/internal/platform/migrations"
)

func setupSessionsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func TestSessionStore_SaveAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupSessionsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	session, err := domain.NewSession("tok-1", now, time.Hour)
	require.NoError(t, err)
	session.BeginOAuth("state-1", "verifier-1")
	require.NoError(t, store.Save(ctx, session))

	fetched, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, fetched.LoggedIn)
	assert.Nil(t, fetched.Identity)
	assert.Equal(t, "state-1", fetched.OAuthState)

	require.NoError(t, session.MarkLoggedIn(&domain.Identity{UserID: "u-1", Nickname: "산재", Provider: "kakao"}))
	require.NoError(t, store.Save(ctx, session))

	fetched, err = store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, fetched.LoggedIn)
	require.NotNil(t, fetched.Identity)
	assert.Equal(t, "u-1", fetched.Identity.UserID)
	assert.Equal(t, "", fetched.Identity.Email)
	assert.Equal(t, "산재", fetched.Identity.Nickname)
	assert.Empty(t, fetched.OAuthState)
}

func TestSessionStore_DeleteAndPurge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupSessionsPostgresContainer(t)
	defer cleanup()

	store := NewSessionStore(db)
	ctx := context.Background()
	now := time.Now().UTC()

	old, _ := domain.NewSession("old", now.Add(-3*time.Hour), time.Hour)
	fresh, _ := domain.NewSession("fresh", now, time.Hour)
	gone, _ := domain.NewSession("gone", now, time.Hour)
	for _, s := range []*domain.Session{old, fresh, gone} {
		require.NoError(t, store.Save(ctx, s))
	}

	require.NoError(t, store.Delete(ctx, "gone"))
	_, err := store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	purged, err := store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	_, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
}
