package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	now := time.Now()

	session, err := domain.NewSession("tok", now, time.Hour)
	require.NoError(t, err)
	require.NoError(t, session.MarkLoggedIn(&domain.Identity{UserID: "u1"}))
	require.NoError(t, store.Save(ctx, session))

	// mutations after Save are not visible to readers
	session.Identity.UserID = "changed"

	got, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, "u1", got.Identity.UserID)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	now := time.Now()

	old, _ := domain.NewSession("old", now.Add(-2*time.Hour), time.Hour)
	fresh, _ := domain.NewSession("fresh", now, time.Hour)
	require.NoError(t, store.Save(ctx, old))
	require.NoError(t, store.Save(ctx, fresh))

	n, err := store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
	_, err = store.Get(ctx, "old")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}
