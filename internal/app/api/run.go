package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	storefrontserver "github.com/ssanjae/offline-store/go"

	"github.com/ssanjae/offline-store/internal/clients/http/gotrue"
	"github.com/ssanjae/offline-store/internal/clients/http/postgrest"
	authmemory "github.com/ssanjae/offline-store/internal/domains/auth/adapters/memory"
	authoauth "github.com/ssanjae/offline-store/internal/domains/auth/adapters/oauth"
	authobs "github.com/ssanjae/offline-store/internal/domains/auth/adapters/observability"
	authpostgres "github.com/ssanjae/offline-store/internal/domains/auth/adapters/persistence/postgres"
	authworkflows "github.com/ssanjae/offline-store/internal/domains/auth/adapters/workflows"
	authapp "github.com/ssanjae/offline-store/internal/domains/auth/application"
	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
	cartmemory "github.com/ssanjae/offline-store/internal/domains/cart/adapters/memory"
	cartobs "github.com/ssanjae/offline-store/internal/domains/cart/adapters/observability"
	cartapp "github.com/ssanjae/offline-store/internal/domains/cart/application"
	"github.com/ssanjae/offline-store/internal/domains/catalog/adapters/fixture"
	catalogmemory "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/persistence/postgres"
	catalogpostgrest "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/postgrest"
	catalogapp "github.com/ssanjae/offline-store/internal/domains/catalog/application"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
	platformobservability "github.com/ssanjae/offline-store/internal/platform/observability"
	platformpostgres "github.com/ssanjae/offline-store/internal/platform/postgres"
)

const serviceName = "offline-store-api"

// Run boots the storefront HTTP server with observability, data sources, and the
// session janitor wired. It returns when ctx is cancelled and the server has drained.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(serviceName))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		instruments.LogMetricSummary(shutdownCtx)
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()

	catalogRepo, watcher, err := buildCatalogRepository(cfg, db, logger)
	if err != nil {
		return err
	}
	catalogService := catalogobs.New(
		catalogapp.NewService(catalogRepo),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	cartRepo := cartmemory.NewRepository()
	cartService := cartobs.New(
		cartapp.NewService(cartRepo, catalogService),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	sessionStore := buildSessionStore(db)
	coreAuth, err := buildAuthService(cfg, sessionStore, cartService.Move, logger)
	if err != nil {
		return err
	}
	authService := authobs.New(
		coreAuth,
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)

	var purger authports.SessionPurgeOrchestrator = authworkflows.NewInlineSessionPurge(authService)
	if db == nil {
		logger.Info("sessions are in memory, purging inline")
	} else if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, purging sessions inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		purger = authworkflows.NewTemporalSessionPurge(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	httpMetrics := platformobservability.NewHTTPMetrics("storefront")
	sessions := storefrontserver.NewSessionAPI(authService, cartService, storefrontserver.CookieConfig{
		Secure: cfg.SessionCookieSecure,
		MaxAge: cfg.SessionTTL,
	})
	handlers := storefrontserver.ApiHandleFunctions{
		SessionAPI: sessions,
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		CartAPI:    storefrontserver.NewCartAPI(cartService),
		PageAPI:    storefrontserver.NewPageAPI(&sessions, catalogService, cartService, logger),
		SystemAPI:  storefrontserver.NewSystemAPI(httpMetrics.Handler()),
	}
	router, err := storefrontserver.NewRouter(handlers,
		otelgin.Middleware(serviceName),
		platformobservability.RequestID(),
		platformobservability.AccessLog(logger),
		httpMetrics.Middleware(),
	)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	janitor := &sessionJanitor{
		purger:   purger,
		sessions: sessionStore,
		carts:    cartRepo,
		interval: cfg.SessionPurgeInterval,
		logger:   logger,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("storefront listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("storefront server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return janitor.Run(gctx)
	})
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("storefront stopped")
	return nil
}

func buildSessionStore(db *gorm.DB) authports.SessionStore {
	if db == nil {
		return authmemory.NewSessionStore()
	}
	return authpostgres.NewSessionStore(db)
}

// buildAuthService wires login. handOver moves a session's cart when login reissues its token.
func buildAuthService(cfg Config, store authports.SessionStore, handOver authapp.RotateFunc, logger *slog.Logger) (*authapp.Service, error) {
	opts := []authapp.Option{authapp.WithSessionTTL(cfg.SessionTTL), authapp.WithTokenRotation(handOver)}
	if !cfg.HostedDataStore() {
		logger.Info("hosted auth not configured, only the test login is available")
		return authapp.NewService(store, opts...), nil
	}
	client, err := gotrue.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth client: %w", err)
	}
	var providerOpts []authoauth.Option
	if cfg.SupabaseJWTSecret != "" {
		providerOpts = append(providerOpts, authoauth.WithJWTSecret(cfg.SupabaseJWTSecret))
	}
	provider, err := authoauth.NewProvider(client, cfg.OAuthProvider, cfg.OAuthCallbackURL(), providerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build oauth provider: %w", err)
	}
	logger.Info("oauth login enabled", slog.String("provider", cfg.OAuthProvider), slog.String("callback", cfg.OAuthCallbackURL()))
	return authapp.NewService(store, append(opts, authapp.WithIdentityProvider(provider))...), nil
}

// buildCatalogRepository picks the first configured source: hosted tables, Postgres,
// then a YAML fixture. The returned watcher is non-nil only for the fixture source.
func buildCatalogRepository(cfg Config, db *gorm.DB, logger *slog.Logger) (catalogports.Repository, *fixture.Watcher, error) {
	switch {
	case cfg.HostedDataStore():
		client, err := postgrest.NewTableClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build table client: %w", err)
		}
		logger.Info("catalog reads from hosted tables", slog.String("url", cfg.SupabaseURL))
		return catalogpostgrest.NewRepository(client), nil, nil
	case db != nil:
		logger.Info("catalog reads from postgres")
		return catalogpostgres.NewRepository(db), nil, nil
	case cfg.CatalogFixture != "":
		repo := catalogmemory.NewRepository()
		watcher, err := fixture.NewWatcher(cfg.CatalogFixture, repo, fixture.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		if err := watcher.LoadInto(); err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog fixture: %w", err)
		}
		logger.Info("catalog reads from fixture", slog.String("path", cfg.CatalogFixture))
		return repo, watcher, nil
	default:
		logger.Warn("no catalog data source configured; set SUPABASE_URL and SUPABASE_ANON_KEY, POSTGRES_DSN, or CATALOG_FIXTURE")
		return catalogports.UnconfiguredRepository, nil, nil
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer("temporal-client"),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(instruments.Logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
