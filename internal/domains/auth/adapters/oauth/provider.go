package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ssanjae/offline-store/internal/clients/http/gotrue"
	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

// ErrInvalidAccessToken is returned when the exchanged access token fails verification.
var ErrInvalidAccessToken = errors.New("access token rejected")

// Exchanger is the part of the hosted auth client the provider needs.
type Exchanger interface {
	AuthorizeURL(provider, redirectTo, codeChallenge string) string
	ExchangeCode(ctx context.Context, authCode, codeVerifier string) (*gotrue.Session, error)
}

// Provider logs users in through the hosted auth service's social login.
type Provider struct {
	client      Exchanger
	name        string
	callbackURL string
	jwtSecret   []byte
}

type Option func(*Provider)

// WithJWTSecret enables HS256 verification of exchanged access tokens.
func WithJWTSecret(secret string) Option {
	return func(p *Provider) {
		if secret = strings.TrimSpace(secret); secret != "" {
			p.jwtSecret = []byte(secret)
		}
	}
}

// NewProvider wires the hosted login for provider (e.g. "kakao"). callbackURL is the
// absolute URL of the storefront callback screen.
func NewProvider(client Exchanger, provider, callbackURL string, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, errors.New("auth client is required")
	}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return nil, errors.New("oauth provider name is required")
	}
	if _, err := url.ParseRequestURI(callbackURL); err != nil {
		return nil, fmt.Errorf("invalid callback URL: %w", err)
	}
	p := &Provider{client: client, name: provider, callbackURL: callbackURL}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

func (p *Provider) Name() string { return p.name }

// AuthorizeURL carries the state inside redirect_to so it comes back on the callback.
func (p *Provider) AuthorizeURL(req ports.AuthorizeRequest) (string, error) {
	redirect, err := url.Parse(p.callbackURL)
	if err != nil {
		return "", err
	}
	q := redirect.Query()
	q.Set("state", req.State)
	redirect.RawQuery = q.Encode()
	return p.client.AuthorizeURL(p.name, redirect.String(), req.CodeChallenge), nil
}

func (p *Provider) Exchange(ctx context.Context, code, codeVerifier string) (*domain.Identity, error) {
	session, err := p.client.ExchangeCode(ctx, code, codeVerifier)
	if err != nil {
		return nil, err
	}
	if session == nil || session.User == nil {
		return nil, ports.ErrNoSession
	}
	if len(p.jwtSecret) > 0 {
		if err := p.verify(stringValue(session.AccessToken), session.User.Id); err != nil {
			return nil, err
		}
	}
	var metadata map[string]any
	if session.User.UserMetadata != nil {
		metadata = *session.User.UserMetadata
	}
	return &domain.Identity{
		UserID:   session.User.Id,
		Email:    stringValue(session.User.Email),
		Nickname: domain.NicknameFromMetadata(metadata),
		Provider: p.name,
	}, nil
}

func (p *Provider) verify(accessToken, userID string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(*jwt.Token) (interface{}, error) {
		return p.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	if claims.Subject != userID {
		return fmt.Errorf("%w: subject does not match user", ErrInvalidAccessToken)
	}
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ ports.IdentityProvider = (*Provider)(nil)
