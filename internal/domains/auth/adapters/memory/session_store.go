package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	if session == nil || strings.TrimSpace(session.Token) == "" {
		return errors.New("session token is required")
	}
	s.sessions.Store(session.Token, session.Clone())
	return nil
}

func (s *SessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	v, ok := s.sessions.Load(token)
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return v.(*domain.Session).Clone(), nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}

func (s *SessionStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	var purged int64
	s.sessions.Range(func(key, value any) bool {
		if value.(*domain.Session).Expired(now) {
			s.sessions.Delete(key)
			purged++
		}
		return true
	})
	return purged, nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
