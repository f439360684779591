package ports

import "context"

// SessionPurgeOrchestrator runs expired-session cleanup, durably or inline.
type SessionPurgeOrchestrator interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
