package sessions

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

// PurgeExpiredActivityName deletes sessions whose expiry has passed.
const PurgeExpiredActivityName = "sessions.activities.PurgeExpired"

// Activities groups activities that operate on the auth bounded context.
type Activities struct {
	service authports.Service
}

func NewActivities(service authports.Service) *Activities {
	return &Activities{service: service}
}

// PurgeExpired removes expired sessions and returns how many were deleted.
func (a *Activities) PurgeExpired(ctx context.Context) (int64, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("session purge activity not initialized")
		return 0, errors.New("session purge activity not initialized")
	}
	logger.Info("PurgeExpired activity started")
	purged, err := a.service.PurgeExpired(ctx)
	if err != nil {
		logger.Error("PurgeExpired activity failed", "error", err)
		return 0, err
	}
	logger.Info("PurgeExpired activity completed", "purged", purged)
	return purged, nil
}
