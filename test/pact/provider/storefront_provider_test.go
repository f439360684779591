//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/ssanjae/offline-store/test/pact"

	storefrontserver "github.com/ssanjae/offline-store/go"
	authmemory "github.com/ssanjae/offline-store/internal/domains/auth/adapters/memory"
	authobs "github.com/ssanjae/offline-store/internal/domains/auth/adapters/observability"
	authapp "github.com/ssanjae/offline-store/internal/domains/auth/application"
	authdomain "github.com/ssanjae/offline-store/internal/domains/auth/domain"
	cartmemory "github.com/ssanjae/offline-store/internal/domains/cart/adapters/memory"
	cartobs "github.com/ssanjae/offline-store/internal/domains/cart/adapters/observability"
	cartapp "github.com/ssanjae/offline-store/internal/domains/cart/application"
	catalogmemory "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/ssanjae/offline-store/internal/domains/catalog/application"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateAnonymous: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCatalogLoggedIn: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCatalog(t)
				app.seedSession(t)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalog  *catalogmemory.Repository
	sessions *authmemory.SessionStore
	carts    *cartmemory.Repository
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	sessionStore := authmemory.NewSessionStore()
	cartRepo := cartmemory.NewRepository()

	catalogService := catalogobs.New(catalogapp.NewService(catalogRepo))
	cartService := cartobs.New(cartapp.NewService(cartRepo, catalogService))
	authService := authobs.New(authapp.NewService(sessionStore, authapp.WithTokenRotation(cartService.Move)))

	sessions := storefrontserver.NewSessionAPI(authService, cartService, storefrontserver.CookieConfig{})
	router, err := storefrontserver.NewRouter(storefrontserver.ApiHandleFunctions{
		SessionAPI: sessions,
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		CartAPI:    storefrontserver.NewCartAPI(cartService),
		PageAPI:    storefrontserver.NewPageAPI(&sessions, catalogService, cartService, nil),
		SystemAPI:  storefrontserver.NewSystemAPI(nil),
	})
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		catalog:  catalogRepo,
		sessions: sessionStore,
		carts:    cartRepo,
		server:   server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	require.NoError(t, a.catalog.Replace(catalogdomain.Snapshot{}))
	require.NoError(t, a.sessions.Delete(context.Background(), pacttest.SessionToken))
	a.carts.Retain(func(string) bool { return false })
}

func (a *contractProviderApp) seedCatalog(t testing.TB) {
	t.Helper()
	price, stock, sortOrder := int64(4500), int64(3), 1
	thumbnail := "https://example.pact/products/injeolmi.png"
	require.NoError(t, a.catalog.Replace(catalogdomain.Snapshot{
		Products: []*catalogdomain.Product{{
			ID:           pacttest.ExistingProductID,
			SortOrder:    &sortOrder,
			Name:         "인절미",
			Price:        &price,
			Stock:        &stock,
			ThumbnailURL: &thumbnail,
			Tags:         []string{"떡"},
		}},
		PickupDates: []*catalogdomain.PickupDate{{
			ID:     1,
			Date:   time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
			IsOpen: true,
		}},
	}))
}

func (a *contractProviderApp) seedSession(t testing.TB) {
	t.Helper()
	now := time.Now()
	session, err := authdomain.NewSession(pacttest.SessionToken, now, time.Hour)
	require.NoError(t, err)
	require.NoError(t, session.MarkLoggedIn(nil))
	require.NoError(t, a.sessions.Save(context.Background(), session))
}
