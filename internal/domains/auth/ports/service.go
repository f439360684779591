package ports

import (
	"context"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
)

// Service exposes login use cases to adapters.
type Service interface {
	// Current loads the session for token, starting a fresh anonymous one when the
	// token is empty, unknown or expired.
	Current(ctx context.Context, token string) (*domain.Session, error)
	StubLogin(ctx context.Context, token string) (*domain.Session, error)
	Reset(ctx context.Context, token string) (*domain.Session, error)
	BeginOAuth(ctx context.Context, token string) (*domain.Session, string, error)
	CompleteOAuth(ctx context.Context, token, code, state string) (*domain.Session, error)
	OAuthEnabled() bool
	PurgeExpired(ctx context.Context) (int64, error)
}
