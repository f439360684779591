package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartports "github.com/ssanjae/offline-store/internal/domains/cart/ports"
)

const tracerName = "github.com/ssanjae/offline-store/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
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

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
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

func (s *Service) View(ctx context.Context, id string) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.View")
	defer span.End()

	view, err := s.inner.View(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart")
	}
	s.annotate(span, view)
	return view, nil
}

func (s *Service) Increment(ctx context.Context, id string, productID int64) (*cartports.View, error) {
	return s.change(ctx, "increment", productID, func(ctx context.Context) (*cartports.View, error) {
		return s.inner.Increment(ctx, id, productID)
	})
}

func (s *Service) Decrement(ctx context.Context, id string, productID int64) (*cartports.View, error) {
	return s.change(ctx, "decrement", productID, func(ctx context.Context) (*cartports.View, error) {
		return s.inner.Decrement(ctx, id, productID)
	})
}

func (s *Service) SetQuantity(ctx context.Context, id string, productID, quantity int64) (*cartports.View, error) {
	return s.change(ctx, "set_quantity", productID, func(ctx context.Context) (*cartports.View, error) {
		return s.inner.SetQuantity(ctx, id, productID, quantity)
	})
}

func (s *Service) Remove(ctx context.Context, id string, productID int64) (*cartports.View, error) {
	return s.change(ctx, "remove", productID, func(ctx context.Context) (*cartports.View, error) {
		return s.inner.Remove(ctx, id, productID)
	})
}

func (s *Service) SelectPickupDate(ctx context.Context, id, date string) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.SelectPickupDate", trace.WithAttributes(attribute.String("cart.pickup_date", date)))
	defer span.End()

	view, err := s.inner.SelectPickupDate(ctx, id, date)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to select pickup date", slog.String("date", date))
	}
	s.annotate(span, view)
	s.logDebug(ctx, "pickup date selected", slog.String("date", view.PickupDate))
	return view, nil
}

func (s *Service) ToggleSummary(ctx context.Context, id string, open bool) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ToggleSummary", trace.WithAttributes(attribute.Bool("cart.summary_open", open)))
	defer span.End()

	view, err := s.inner.ToggleSummary(ctx, id, open)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to toggle cart summary")
	}
	return view, nil
}

func (s *Service) Clear(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear")
	defer span.End()

	if err := s.inner.Clear(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	return nil
}

func (s *Service) Move(ctx context.Context, from, to string) error {
	ctx, span := s.tracer.Start(ctx, "CartService.Move")
	defer span.End()

	if err := s.inner.Move(ctx, from, to); err != nil {
		return s.handleError(ctx, span, err, "failed to move cart")
	}
	return nil
}

func (s *Service) change(ctx context.Context, op string, productID int64, fn func(context.Context) (*cartports.View, error)) (*cartports.View, error) {
	ctx, span := s.tracer.Start(ctx, "CartService."+op, trace.WithAttributes(attribute.Int64("product.id", productID)))
	defer span.End()

	view, err := fn(ctx)
	if err != nil {
		s.metrics.recordChange(ctx, op, false)
		return nil, s.handleError(ctx, span, err, "cart change rejected", slog.String("op", op), slog.Int64("productId", productID))
	}
	s.metrics.recordChange(ctx, op, true)
	s.annotate(span, view)
	s.logDebug(ctx, "cart changed", slog.String("op", op), slog.Int64("productId", productID), slog.Int64("totalQuantity", view.TotalQuantity))
	return view, nil
}

func (s *Service) annotate(span trace.Span, view *cartports.View) {
	span.SetAttributes(
		attribute.Int("cart.lines", len(view.Lines)),
		attribute.Int64("cart.total_quantity", view.TotalQuantity),
	)
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
	changes metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	changes, _ := m.Int64Counter("cart.service.changes", metric.WithDescription("Number of cart changes by operation and outcome"))
	return serviceMetrics{changes: changes}
}

func (m serviceMetrics) recordChange(ctx context.Context, op string, ok bool) {
	if m.changes != nil {
		m.changes.Add(ctx, 1, metric.WithAttributes(
			attribute.String("cart.op", op),
			attribute.Bool("cart.accepted", ok),
		))
	}
}

var _ cartports.Service = (*Service)(nil)
