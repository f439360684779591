package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
	sessionworkflows "github.com/ssanjae/offline-store/internal/platform/temporal/workflows/sessions"
)

var (
	_ ports.SessionPurgeOrchestrator = (*TemporalSessionPurge)(nil)
	_ ports.SessionPurgeOrchestrator = (*InlineSessionPurge)(nil)
)

// TemporalSessionPurge starts the purge workflow on a Temporal cluster.
type TemporalSessionPurge struct {
	client    client.Client
	taskQueue string
}

func NewTemporalSessionPurge(c client.Client) *TemporalSessionPurge {
	return &TemporalSessionPurge{client: c, taskQueue: sessionworkflows.SessionPurgeTaskQueue}
}

// PurgeExpiredSessions runs the workflow and waits for its count. Replicas
// sweeping in the same minute share one workflow run.
func (o *TemporalSessionPurge) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	if o == nil || o.client == nil {
		return 0, errors.New("temporal session purge not configured")
	}
	workflowID := purgeWorkflowID(time.Now())
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,

		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		sessionworkflows.SessionPurgeWorkflow,
		sessionworkflows.SessionPurgeWorkflowInput{TraceID: workflowTraceComponent(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return 0, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var purged int64
	if err := run.Get(ctx, &purged); err != nil {
		return 0, err
	}
	return purged, nil
}

// InlineSessionPurge calls the service directly, for development without Temporal.
type InlineSessionPurge struct {
	service ports.Service
}

func NewInlineSessionPurge(service ports.Service) *InlineSessionPurge {
	return &InlineSessionPurge{service: service}
}

func (o *InlineSessionPurge) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	if o == nil || o.service == nil {
		return 0, errors.New("inline session purge not configured")
	}
	return o.service.PurgeExpired(ctx)
}

func purgeWorkflowID(now time.Time) string {
	return fmt.Sprintf("session-purge-%d", now.UTC().Truncate(time.Minute).Unix())
}

func workflowTraceComponent(ctx context.Context) string {
	if span := oteltrace.SpanFromContext(ctx); span != nil {
		if sc := span.SpanContext(); sc.IsValid() && sc.TraceID().IsValid() {
			return sc.TraceID().String()
		}
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
