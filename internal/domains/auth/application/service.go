package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
	"github.com/ssanjae/offline-store/internal/shared/keylock"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// Service implements the login flag store use cases.
type Service struct {
	sessions ports.SessionStore
	provider ports.IdentityProvider
	ttl      time.Duration
	now      func() time.Time
	newToken func() string
	onRotate RotateFunc
	// locks serializes read-modify-write cycles on one session token.
	locks *keylock.Striped
}

// RotateFunc is told when a login reissues a session under a new token.
type RotateFunc func(ctx context.Context, from, to string) error

type Option func(*Service)

// WithIdentityProvider enables the OAuth redirect flow.
func WithIdentityProvider(provider ports.IdentityProvider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithTokenGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newToken = gen
		}
	}
}

// WithTokenRotation registers fn to run after a login moved a session to a new
// token, e.g. to carry the cart over.
func WithTokenRotation(fn RotateFunc) Option {
	return func(s *Service) {
		s.onRotate = fn
	}
}

func NewService(sessions ports.SessionStore, opts ...Option) *Service {
	s := &Service{
		sessions: sessions,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		newToken: uuid.NewString,
		locks:    keylock.New(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Current(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	defer s.locks.Lock(token)()
	return s.current(ctx, token)
}

func (s *Service) current(ctx context.Context, token string) (*domain.Session, error) {
	now := s.now()
	if token != "" {
		session, err := s.sessions.Get(ctx, token)
		switch {
		case err == nil && !session.Expired(now):
			if session.NeedsRefresh(now, s.ttl) {
				session.Refresh(now, s.ttl)
				if err := s.sessions.Save(ctx, session); err != nil {
					return nil, err
				}
			}
			return session, nil
		case err == nil:
			_ = s.sessions.Delete(ctx, token)
		case !errors.Is(err, ports.ErrSessionNotFound):
			return nil, err
		}
	}
	session, err := domain.NewSession(s.newToken(), now, s.ttl)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// StubLogin sets the login flag without contacting any provider. The session comes
// back under a new token.
func (s *Service) StubLogin(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	defer s.locks.Lock(token)()
	session, err := s.current(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := session.MarkLoggedIn(nil); err != nil {
		return nil, mapError(err)
	}
	return s.rotate(ctx, session)
}

// Reset deletes the login record from the session.
func (s *Service) Reset(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	defer s.locks.Lock(token)()
	session, err := s.current(ctx, token)
	if err != nil {
		return nil, err
	}
	session.Reset()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) OAuthEnabled() bool {
	return s.provider != nil
}

// BeginOAuth stores a fresh state and PKCE verifier and returns the provider URL.
func (s *Service) BeginOAuth(ctx context.Context, token string) (*domain.Session, string, error) {
	if s.provider == nil {
		return nil, "", ports.ErrProviderNotConfigured
	}
	token = strings.TrimSpace(token)
	defer s.locks.Lock(token)()
	session, err := s.current(ctx, token)
	if err != nil {
		return nil, "", err
	}
	verifier := oauth2.GenerateVerifier()
	state := s.newToken()
	authorizeURL, err := s.provider.AuthorizeURL(ports.AuthorizeRequest{
		State:         state,
		CodeChallenge: oauth2.S256ChallengeFromVerifier(verifier),
	})
	if err != nil {
		return nil, "", err
	}
	session.BeginOAuth(state, verifier)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}
	return session, authorizeURL, nil
}

// CompleteOAuth exchanges the callback code and copies the identity into the session,
// which comes back under a new token.
func (s *Service) CompleteOAuth(ctx context.Context, token, code, state string) (*domain.Session, error) {
	if s.provider == nil {
		return nil, ports.ErrProviderNotConfigured
	}
	token = strings.TrimSpace(token)
	defer s.locks.Lock(token)()
	session, err := s.current(ctx, token)
	if err != nil {
		return nil, err
	}
	verifier, stateErr := session.ConsumeOAuth(state)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	if stateErr != nil {
		return nil, mapError(stateErr)
	}
	if strings.TrimSpace(code) == "" {
		return nil, mapError(ports.ErrNoSession)
	}
	identity, err := s.provider.Exchange(ctx, code, verifier)
	if err != nil {
		return nil, mapError(err)
	}
	if identity == nil {
		return nil, mapError(ports.ErrNoSession)
	}
	if identity.Provider == "" {
		identity.Provider = s.provider.Name()
	}
	if err := session.MarkLoggedIn(identity); err != nil {
		return nil, mapError(err)
	}
	return s.rotate(ctx, session)
}

// rotate saves session under a fresh token and drops the old one, so a token
// issued before login never carries the login flag.
func (s *Service) rotate(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	rotated, err := session.Rotate(s.newToken())
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.sessions.Save(ctx, rotated); err != nil {
		return nil, err
	}
	if s.onRotate != nil {
		if err := s.onRotate(ctx, session.Token, rotated.Token); err != nil {
			_ = s.sessions.Delete(ctx, rotated.Token)
			return nil, fmt.Errorf("hand over session: %w", err)
		}
	}
	if err := s.sessions.Delete(ctx, session.Token); err != nil {
		return nil, err
	}
	return rotated, nil
}

// PurgeExpired removes sessions past their expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.PurgeExpired(ctx, s.now())
}

var _ ports.Service = (*Service)(nil)
