package ports

import (
	"context"
	"errors"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
)

var (
	ErrProviderNotConfigured = errors.New("oauth provider is not configured")
	// ErrNoSession means the provider answered without a session for the user.
	ErrNoSession = errors.New("no session returned by identity provider")
)

// AuthorizeRequest carries what the provider needs to start a redirect login.
type AuthorizeRequest struct {
	State         string
	CodeChallenge string
}

// IdentityProvider is the hosted OAuth collaborator.
type IdentityProvider interface {
	Name() string
	AuthorizeURL(req AuthorizeRequest) (string, error)
	Exchange(ctx context.Context, code, codeVerifier string) (*domain.Identity, error)
}
