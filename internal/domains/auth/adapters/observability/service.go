package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	authdomain "github.com/ssanjae/offline-store/internal/domains/auth/domain"
	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

const tracerName = "github.com/ssanjae/offline-store/internal/domains/auth/adapters/observability/service"

// Service decorates the auth service with tracing, logging, and metrics.
type Service struct {
	inner   authports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core auth service.
func New(inner authports.Service, opts ...Option) authports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

// Current is called on every request, so it only traces.
func (s *Service) Current(ctx context.Context, token string) (*authdomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Current")
	defer span.End()

	session, err := s.inner.Current(ctx, token)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load session")
	}
	span.SetAttributes(attribute.Bool("session.logged_in", session.LoggedIn))
	return session, nil
}

func (s *Service) StubLogin(ctx context.Context, token string) (*authdomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.StubLogin")
	defer span.End()

	session, err := s.inner.StubLogin(ctx, token)
	if err != nil {
		s.metrics.recordLogin(ctx, "stub", false)
		return nil, s.handleError(ctx, span, err, "stub login failed")
	}
	s.metrics.recordLogin(ctx, "stub", true)
	s.logInfo(ctx, "stub login")
	return session, nil
}

func (s *Service) Reset(ctx context.Context, token string) (*authdomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Reset")
	defer span.End()

	session, err := s.inner.Reset(ctx, token)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "login reset failed")
	}
	s.logInfo(ctx, "login reset")
	return session, nil
}

func (s *Service) BeginOAuth(ctx context.Context, token string) (*authdomain.Session, string, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.BeginOAuth")
	defer span.End()

	session, authorizeURL, err := s.inner.BeginOAuth(ctx, token)
	if err != nil {
		return nil, "", s.handleError(ctx, span, err, "failed to start oauth login")
	}
	return session, authorizeURL, nil
}

func (s *Service) CompleteOAuth(ctx context.Context, token, code, state string) (*authdomain.Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.CompleteOAuth")
	defer span.End()

	session, err := s.inner.CompleteOAuth(ctx, token, code, state)
	if err != nil {
		s.metrics.recordLogin(ctx, "oauth", false)
		return nil, s.handleError(ctx, span, err, "oauth callback failed")
	}
	s.metrics.recordLogin(ctx, "oauth", true)
	attrs := []slog.Attr{}
	if session.Identity != nil {
		span.SetAttributes(attribute.String("user.provider", session.Identity.Provider))
		attrs = append(attrs, slog.String("provider", session.Identity.Provider), slog.String("userId", session.Identity.UserID))
	}
	s.logInfo(ctx, "oauth login completed", attrs...)
	return session, nil
}

func (s *Service) OAuthEnabled() bool {
	return s.inner.OAuthEnabled()
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.PurgeExpired")
	defer span.End()

	purged, err := s.inner.PurgeExpired(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "session purge failed")
	}
	span.SetAttributes(attribute.Int64("sessions.purged", purged))
	s.metrics.recordPurged(ctx, purged)
	s.logInfo(ctx, "expired sessions purged", slog.Int64("purged", purged))
	return purged, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	logins metric.Int64Counter
	purged metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	logins, _ := m.Int64Counter("auth.service.logins", metric.WithDescription("Number of login attempts by method and outcome"))
	purged, _ := m.Int64Counter("auth.service.sessions_purged", metric.WithDescription("Number of expired sessions deleted"))
	return serviceMetrics{logins: logins, purged: purged}
}

func (m serviceMetrics) recordLogin(ctx context.Context, method string, ok bool) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(
			attribute.String("auth.method", method),
			attribute.Bool("auth.success", ok),
		))
	}
}

func (m serviceMetrics) recordPurged(ctx context.Context, n int64) {
	if m.purged != nil && n > 0 {
		m.purged.Add(ctx, n)
	}
}

var _ authports.Service = (*Service)(nil)
