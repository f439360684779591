package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Rotate(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	session, err := NewSession("old", now, time.Hour)
	require.NoError(t, err)
	require.NoError(t, session.MarkLoggedIn(&Identity{UserID: "u-1", Nickname: "산재"}))

	rotated, err := session.Rotate(" new ")
	require.NoError(t, err)
	assert.Equal(t, "new", rotated.Token)
	assert.True(t, rotated.LoggedIn)
	assert.Equal(t, session.ExpiresAt, rotated.ExpiresAt)
	assert.Equal(t, "old", session.Token)

	rotated.Identity.Nickname = "changed"
	assert.Equal(t, "산재", session.Identity.Nickname)

	_, err = session.Rotate("  ")
	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestSession_ConsumeOAuthIsSingleUse(t *testing.T) {
	session, err := NewSession("t", time.Now(), time.Hour)
	require.NoError(t, err)
	session.BeginOAuth("state-1", "verifier-1")

	verifier, err := session.ConsumeOAuth("state-1")
	require.NoError(t, err)
	assert.Equal(t, "verifier-1", verifier)

	_, err = session.ConsumeOAuth("state-1")
	require.ErrorIs(t, err, ErrNoPendingOAuth)
}
