package oauth

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssanjae/offline-store/internal/clients/http/gotrue"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

type fakeExchanger struct {
	session *gotrue.Session
	err     error
}

func (f *fakeExchanger) AuthorizeURL(provider, redirectTo, codeChallenge string) string {
	values := url.Values{"provider": {provider}, "redirect_to": {redirectTo}, "code_challenge": {codeChallenge}}
	return "https://project.example.test/auth/v1/authorize?" + values.Encode()
}

func (f *fakeExchanger) ExchangeCode(context.Context, string, string) (*gotrue.Session, error) {
	return f.session, f.err
}

func ptr(s string) *string { return &s }

func signToken(t *testing.T, subject, secret string, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	if key == nil {
		key = []byte(secret)
	}
	signed, err := tok.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestProvider_AuthorizeURLCarriesState(t *testing.T) {
	p, err := NewProvider(&fakeExchanger{}, "kakao", "https://shop.example.test/auth/callback")
	require.NoError(t, err)

	raw, err := p.AuthorizeURL(ports.AuthorizeRequest{State: "s-1", CodeChallenge: "cc"})
	require.NoError(t, err)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "kakao", parsed.Query().Get("provider"))
	assert.Equal(t, "cc", parsed.Query().Get("code_challenge"))

	redirect, err := url.Parse(parsed.Query().Get("redirect_to"))
	require.NoError(t, err)
	assert.Equal(t, "/auth/callback", redirect.Path)
	assert.Equal(t, "s-1", redirect.Query().Get("state"))
}

func TestProvider_ExchangeCopiesIdentity(t *testing.T) {
	metadata := map[string]any{"name": "홍길동", "nickname": "길동"}
	exchanger := &fakeExchanger{session: &gotrue.Session{
		AccessToken: ptr(signToken(t, "u-1", testSecret, jwt.SigningMethodHS256, nil)),
		User: &gotrue.User{
			Id:           "u-1",
			Email:        ptr("a@example.com"),
			UserMetadata: &metadata,
		},
	}}
	p, err := NewProvider(exchanger, "kakao", "https://shop.example.test/auth/callback", WithJWTSecret(testSecret))
	require.NoError(t, err)

	identity, err := p.Exchange(context.Background(), "code", "verifier")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, "a@example.com", identity.Email)
	assert.Equal(t, "길동", identity.Nickname)
	assert.Equal(t, "kakao", identity.Provider)
}

func TestProvider_ExchangeRejectsBadTokens(t *testing.T) {
	cases := map[string]string{
		"wrong secret":  signToken(t, "u-1", "another-secret-that-is-long-enough-000", jwt.SigningMethodHS256, nil),
		"wrong subject": signToken(t, "u-2", testSecret, jwt.SigningMethodHS256, nil),
		"wrong method":  signToken(t, "u-1", testSecret, jwt.SigningMethodHS512, nil),
		"garbage":       "not-a-jwt",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			exchanger := &fakeExchanger{session: &gotrue.Session{AccessToken: ptr(token), User: &gotrue.User{Id: "u-1"}}}
			p, err := NewProvider(exchanger, "kakao", "https://shop.example.test/auth/callback", WithJWTSecret(testSecret))
			require.NoError(t, err)

			_, err = p.Exchange(context.Background(), "code", "verifier")
			require.ErrorIs(t, err, ErrInvalidAccessToken)
		})
	}
}

func TestProvider_ExchangeWithoutSecretSkipsVerification(t *testing.T) {
	exchanger := &fakeExchanger{session: &gotrue.Session{AccessToken: ptr("opaque"), User: &gotrue.User{Id: "u-1"}}}
	p, err := NewProvider(exchanger, "kakao", "https://shop.example.test/auth/callback")
	require.NoError(t, err)

	identity, err := p.Exchange(context.Background(), "code", "verifier")
	require.NoError(t, err)
	assert.Empty(t, identity.Nickname)
}

func TestProvider_ExchangeErrors(t *testing.T) {
	p, err := NewProvider(&fakeExchanger{}, "kakao", "https://shop.example.test/auth/callback")
	require.NoError(t, err)
	_, err = p.Exchange(context.Background(), "code", "verifier")
	require.ErrorIs(t, err, ports.ErrNoSession)

	upstream := errors.New("invalid flow state")
	p, err = NewProvider(&fakeExchanger{err: upstream}, "kakao", "https://shop.example.test/auth/callback")
	require.NoError(t, err)
	_, err = p.Exchange(context.Background(), "code", "verifier")
	require.ErrorIs(t, err, upstream)
}

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(nil, "kakao", "https://shop.example.test/auth/callback")
	require.Error(t, err)
	_, err = NewProvider(&fakeExchanger{}, " ", "https://shop.example.test/auth/callback")
	require.Error(t, err)
	_, err = NewProvider(&fakeExchanger{}, "kakao", "not a url")
	require.Error(t, err)
}
