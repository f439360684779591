package sessions

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	sessionactivities "github.com/ssanjae/offline-store/internal/platform/temporal/activities/sessions"
)

const (
	// SessionPurgeWorkflowName is the public identifier for registering the workflow.
	SessionPurgeWorkflowName = "sessions.workflows.Purge"
	// SessionPurgeTaskQueue is the queue consumed by the worker processing session workflows.
	SessionPurgeTaskQueue = "SESSION_PURGE"
)

type SessionPurgeWorkflowInput struct {
	TraceID string
}

// SessionPurgeWorkflow runs the purge activity with retries and reports the count.
func SessionPurgeWorkflow(ctx workflow.Context, input SessionPurgeWorkflowInput) (int64, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("SessionPurgeWorkflow started", withTraceID(input.TraceID)...)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	var purged int64
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, options), sessionactivities.PurgeExpiredActivityName).Get(ctx, &purged)
	if err != nil {
		logger.Error("SessionPurgeWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return 0, err
	}
	logger.Info("SessionPurgeWorkflow completed", withTraceID(input.TraceID, "purged", purged)...)
	return purged, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
