package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

// cartRetainer is the part of the in-memory cart repository the janitor needs.
type cartRetainer interface {
	Retain(keep func(id string) bool) int
}

// sessionJanitor periodically purges expired sessions and forgets the carts they owned.
type sessionJanitor struct {
	purger   authports.SessionPurgeOrchestrator
	sessions authports.SessionStore
	carts    cartRetainer
	interval time.Duration
	logger   *slog.Logger
}

// Run sweeps once per interval until ctx is done.
func (j *sessionJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	purged, err := j.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			j.logger.WarnContext(ctx, "session purge failed", slog.String("error", err.Error()))
		}
		return
	}
	dropped := j.carts.Retain(func(id string) bool {
		_, err := j.sessions.Get(ctx, id)
		return !errors.Is(err, authports.ErrSessionNotFound)
	})
	if purged > 0 || dropped > 0 {
		j.logger.InfoContext(ctx, "expired sessions purged",
			slog.Int64("sessions", purged),
			slog.Int("carts", dropped),
		)
	}
}
