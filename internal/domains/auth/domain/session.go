package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyToken      = errors.New("session token is required")
	ErrNoPendingOAuth  = errors.New("no oauth login is in progress for this session")
	ErrStateMismatch   = errors.New("oauth state does not match")
	ErrEmptyIdentityID = errors.New("identity user id is required")
)

// Identity is the subset of the provider's user record the storefront keeps for
// later use as orderer information.
type Identity struct {
	UserID   string
	Email    string
	Nickname string
	Provider string
}

// Validate ensures the identity can be attached to a session.
func (i *Identity) Validate() error {
	if strings.TrimSpace(i.UserID) == "" {
		return ErrEmptyIdentityID
	}
	return nil
}

// NicknameFromMetadata picks "nickname", then "name", from provider user metadata.
func NicknameFromMetadata(meta map[string]any) string {
	for _, key := range []string{"nickname", "name"} {
		if v, ok := meta[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Session is the server-side login flag store keyed by an opaque cookie token.
type Session struct {
	Token        string
	LoggedIn     bool
	Identity     *Identity
	OAuthState   string
	CodeVerifier string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// NewSession starts an anonymous session.
func NewSession(token string, now time.Time, ttl time.Duration) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}
	return &Session{Token: token, CreatedAt: now, ExpiresAt: now.Add(ttl)}, nil
}

// MarkLoggedIn sets the login flag. A nil identity is the stubbed test login.
func (s *Session) MarkLoggedIn(identity *Identity) error {
	if identity != nil {
		if err := identity.Validate(); err != nil {
			return err
		}
		copy := *identity
		s.Identity = &copy
	} else {
		s.Identity = nil
	}
	s.LoggedIn = true
	s.OAuthState = ""
	s.CodeVerifier = ""
	return nil
}

// Reset removes the login flag together with any identity and pending OAuth state.
func (s *Session) Reset() {
	s.LoggedIn = false
	s.Identity = nil
	s.OAuthState = ""
	s.CodeVerifier = ""
}

// BeginOAuth records the state and PKCE verifier of a redirect in flight.
func (s *Session) BeginOAuth(state, verifier string) {
	s.OAuthState = state
	s.CodeVerifier = verifier
}

// ConsumeOAuth checks state and returns the verifier. The pending state is cleared
// either way so a callback can only be replayed once.
func (s *Session) ConsumeOAuth(state string) (string, error) {
	expected, verifier := s.OAuthState, s.CodeVerifier
	s.OAuthState = ""
	s.CodeVerifier = ""
	if expected == "" {
		return "", ErrNoPendingOAuth
	}
	if strings.TrimSpace(state) != expected {
		return "", ErrStateMismatch
	}
	return verifier, nil
}

// Rotate returns a copy of the session keyed by token. Expiry is kept.
func (s *Session) Rotate(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrEmptyToken
	}
	rotated := s.Clone()
	rotated.Token = token
	return rotated, nil
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// NeedsRefresh reports whether less than half of ttl remains.
func (s *Session) NeedsRefresh(now time.Time, ttl time.Duration) bool {
	return s.ExpiresAt.Sub(now) < ttl/2
}

// Refresh slides the expiry forward.
func (s *Session) Refresh(now time.Time, ttl time.Duration) {
	s.ExpiresAt = now.Add(ttl)
}

// DisplayName is what the storefront greets the customer with.
func (s *Session) DisplayName() string {
	if s.Identity == nil {
		return ""
	}
	if s.Identity.Nickname != "" {
		return s.Identity.Nickname
	}
	return s.Identity.Email
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	if s.Identity != nil {
		id := *s.Identity
		clone.Identity = &id
	}
	return &clone
}
