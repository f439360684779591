package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

const tracerName = "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
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

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
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

func (s *Service) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		s.metrics.recordFailure(ctx, "products")
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.products.count", len(result)))
	s.logDebug(ctx, "products listed", slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) ListOpenPickupDates(ctx context.Context) ([]*catalogdomain.PickupDate, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListOpenPickupDates")
	defer span.End()

	result, err := s.inner.ListOpenPickupDates(ctx)
	if err != nil {
		s.metrics.recordFailure(ctx, "pickup_dates")
		return nil, s.handleError(ctx, span, err, "failed to list pickup dates")
	}
	span.SetAttributes(attribute.Int("catalog.pickup_dates.count", len(result)))
	return result, nil
}

func (s *Service) ListNotices(ctx context.Context) ([]*catalogdomain.Notice, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListNotices")
	defer span.End()

	result, err := s.inner.ListNotices(ctx)
	if err != nil {
		s.metrics.recordFailure(ctx, "notices")
		return nil, s.handleError(ctx, span, err, "failed to list notices")
	}
	span.SetAttributes(attribute.Int("catalog.notices.count", len(result)))
	return result, nil
}

func (s *Service) Storefront(ctx context.Context) (*catalogports.Storefront, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Storefront")
	defer span.End()

	front, err := s.inner.Storefront(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "storefront load aborted")
	}
	s.recordSection(ctx, span, "products", front.Products.Err, len(front.Products.Rows))
	s.recordSection(ctx, span, "pickup_dates", front.PickupDates.Err, len(front.PickupDates.Rows))
	s.recordSection(ctx, span, "notices", front.Notices.Err, len(front.Notices.Rows))
	s.metrics.recordStorefront(ctx)
	return front, nil
}

func (s *Service) recordSection(ctx context.Context, span trace.Span, section string, err error, rows int) {
	span.SetAttributes(attribute.Int("catalog."+section+".count", rows))
	if err == nil {
		return
	}
	span.RecordError(err, trace.WithAttributes(attribute.String("catalog.section", section)))
	s.metrics.recordFailure(ctx, section)
	s.logError(ctx, "storefront section failed", err, slog.String("section", section))
}

func (s *Service) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
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
	storefrontLoads metric.Int64Counter
	readFailures    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	loads, _ := m.Int64Counter("catalog.service.storefront_loads", metric.WithDescription("Number of catalog screen loads"))
	failures, _ := m.Int64Counter("catalog.service.read_failures", metric.WithDescription("Number of failed catalog reads by table"))
	return serviceMetrics{storefrontLoads: loads, readFailures: failures}
}

func (m serviceMetrics) recordStorefront(ctx context.Context) {
	if m.storefrontLoads != nil {
		m.storefrontLoads.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, table string) {
	if m.readFailures != nil {
		m.readFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("catalog.table", table)))
	}
}

var _ catalogports.Service = (*Service)(nil)
