package workflows

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/ssanjae/offline-store/internal/domains/auth/application"
	"github.com/ssanjae/offline-store/internal/domains/auth/adapters/memory"
)

func TestInlineSessionPurge_DelegatesToService(t *testing.T) {
	svc := application.NewService(memory.NewSessionStore())
	orchestrator := NewInlineSessionPurge(svc)

	purged, err := orchestrator.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	require.Zero(t, purged)
}

func TestUnconfiguredOrchestrators(t *testing.T) {
	_, err := (&InlineSessionPurge{}).PurgeExpiredSessions(context.Background())
	require.Error(t, err)
	_, err = NewTemporalSessionPurge(nil).PurgeExpiredSessions(context.Background())
	require.Error(t, err)
}

func TestWorkflowTraceComponent(t *testing.T) {
	require.True(t, strings.HasPrefix(workflowTraceComponent(context.Background()), "fallback-"))

	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{1}})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	require.Equal(t, traceID.String(), workflowTraceComponent(ctx))
}

func TestPurgeWorkflowID_SharedWithinMinute(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	require.Equal(t, purgeWorkflowID(base), purgeWorkflowID(base.Add(59*time.Second)))
	require.NotEqual(t, purgeWorkflowID(base), purgeWorkflowID(base.Add(time.Minute)))
	require.Equal(t, "session-purge-1714555800", purgeWorkflowID(base))
}
