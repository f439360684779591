package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/ssanjae/offline-store/internal/app/api"
	authobs "github.com/ssanjae/offline-store/internal/domains/auth/adapters/observability"
	authpostgres "github.com/ssanjae/offline-store/internal/domains/auth/adapters/persistence/postgres"
	authapp "github.com/ssanjae/offline-store/internal/domains/auth/application"
	platformobservability "github.com/ssanjae/offline-store/internal/platform/observability"
	platformpostgres "github.com/ssanjae/offline-store/internal/platform/postgres"
	sessionactivities "github.com/ssanjae/offline-store/internal/platform/temporal/activities/sessions"
	sessionworkflows "github.com/ssanjae/offline-store/internal/platform/temporal/workflows/sessions"
)

func main() {
	ctx := context.Background()
	const serviceName = "offline-store-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.Observability(serviceName))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db == nil {
		logger.Error("worker needs POSTGRES_DSN: in-memory sessions live only in the API process")
		os.Exit(1)
	}
	authService := authobs.New(
		authapp.NewService(authpostgres.NewSessionStore(db), authapp.WithSessionTTL(cfg.SessionTTL)),
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)
	activities := sessionactivities.NewActivities(authService)

	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")})
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, sessionworkflows.SessionPurgeTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(sessionworkflows.SessionPurgeWorkflow, workflow.RegisterOptions{Name: sessionworkflows.SessionPurgeWorkflowName})
	w.RegisterActivityWithOptions(activities.PurgeExpired, activity.RegisterOptions{Name: sessionactivities.PurgeExpiredActivityName})

	logger.Info("worker listening", slog.String("taskQueue", sessionworkflows.SessionPurgeTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
