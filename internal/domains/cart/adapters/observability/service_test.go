package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ssanjae/offline-store/internal/domains/cart/adapters/memory"
	"github.com/ssanjae/offline-store/internal/domains/cart/application"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

type stubCatalog struct{}

func (stubCatalog) GetProduct(_ context.Context, id int64) (*catalogdomain.Product, error) {
	if id != 1 {
		return nil, catalogports.ErrNotFound
	}
	stock := int64(3)
	return &catalogdomain.Product{ID: 1, Name: "쑥떡", Stock: &stock}, nil
}

func (c stubCatalog) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	p, _ := c.GetProduct(ctx, 1)
	return []*catalogdomain.Product{p}, nil
}

func (stubCatalog) ListOpenPickupDates(context.Context) ([]*catalogdomain.PickupDate, error) {
	return nil, nil
}

func TestService_RecordsSpansLogsAndMetrics(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := New(application.NewService(memory.NewRepository(), stubCatalog{}),
		WithLogger(logger),
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
	)

	_, err := svc.Increment(context.Background(), "s1", 1)
	require.NoError(t, err)
	_, err = svc.Increment(context.Background(), "s1", 42)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "CartService.increment", spans[0].Name())
	require.Len(t, spans[1].Events(), 1)

	require.Contains(t, logs.String(), "cart changed")
	require.Contains(t, logs.String(), "cart change rejected")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)
}
