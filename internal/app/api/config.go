package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	platformobservability "github.com/ssanjae/offline-store/internal/platform/observability"
)

const (
	defaultSessionTTL           = 24 * time.Hour
	defaultSessionPurgeInterval = 15 * time.Minute
	defaultOAuthProvider        = "kakao"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	PostgresDSN       string
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string
	OAuthProvider     string
	PublicBaseURL     string
	CatalogFixture    string

	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration
	SessionCookieSecure  bool

	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool

	OTLPEndpoint string
	OTLPInsecure bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		Environment:       envDefault("ENVIRONMENT", "local"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SupabaseURL:       strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/"),
		SupabaseAnonKey:   strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
		SupabaseJWTSecret: strings.TrimSpace(os.Getenv("SUPABASE_JWT_SECRET")),
		OAuthProvider:     envDefault("OAUTH_PROVIDER", defaultOAuthProvider),
		CatalogFixture:    strings.TrimSpace(os.Getenv("CATALOG_FIXTURE")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		OTLPEndpoint:      strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OTLPInsecure:      isTruthy(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")),
	}
	cfg.SessionCookieSecure = isTruthy(os.Getenv("SESSION_COOKIE_SECURE"))
	cfg.PublicBaseURL = strings.TrimRight(envDefault("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port), "/")

	var err error
	if cfg.LogLevel, err = parseLogLevel(os.Getenv("LOG_LEVEL")); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = positiveDuration("SESSION_TTL_HOURS", time.Hour, defaultSessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.SessionPurgeInterval, err = positiveDuration("SESSION_PURGE_INTERVAL_MINUTES", time.Minute, defaultSessionPurgeInterval); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if (c.SupabaseURL == "") != (c.SupabaseAnonKey == "") {
		return errors.New("SUPABASE_URL and SUPABASE_ANON_KEY must be set together")
	}
	if c.SupabaseURL != "" {
		if _, err := url.ParseRequestURI(c.SupabaseURL); err != nil {
			return fmt.Errorf("SUPABASE_URL is not a valid URL: %w", err)
		}
	}
	if _, err := url.ParseRequestURI(c.PublicBaseURL); err != nil {
		return fmt.Errorf("PUBLIC_BASE_URL is not a valid URL: %w", err)
	}
	return nil
}

// HostedDataStore reports whether catalog reads and OAuth go to the hosted project.
func (c Config) HostedDataStore() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// OAuthCallbackURL is where the provider sends the browser back to.
func (c Config) OAuthCallbackURL() string {
	return c.PublicBaseURL + "/auth/callback"
}

// Observability returns the exporter settings for the given process name.
func (c Config) Observability(serviceName string) platformobservability.Settings {
	return platformobservability.Settings{
		ServiceName:  serviceName,
		Environment:  c.Environment,
		OTLPEndpoint: c.OTLPEndpoint,
		OTLPInsecure: c.OTLPInsecure,
		LogLevel:     c.LogLevel,
	}
}

func positiveDuration(key string, unit, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return time.Duration(n) * unit, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
