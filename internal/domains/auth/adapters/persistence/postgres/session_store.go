package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ssanjae/offline-store/internal/domains/auth/domain"
	"github.com/ssanjae/offline-store/internal/domains/auth/ports"
)

// SessionStore persists login sessions in PostgreSQL.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// sessionRecord is the user_sessions row; platform/migrations mirrors it.
type sessionRecord struct {
	Token        string    `gorm:"primaryKey;column:token;size:128"`
	LoggedIn     bool      `gorm:"column:logged_in;not null;default:false"`
	UserID       *string   `gorm:"column:user_id;size:128;index"`
	Email        *string   `gorm:"column:email;size:320"`
	Nickname     *string   `gorm:"column:nickname;size:255"`
	Provider     *string   `gorm:"column:provider;size:64"`
	OAuthState   string    `gorm:"column:oauth_state;size:128"`
	CodeVerifier string    `gorm:"column:code_verifier;size:128"`
	ExpiresAt    time.Time `gorm:"column:expires_at;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Save upserts the session keyed by token.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if session == nil || strings.TrimSpace(session.Token) == "" {
		return domain.ErrEmptyToken
	}
	rec := toRecord(session)
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"logged_in", "user_id", "email", "nickname", "provider",
				"oauth_state", "code_verifier", "expires_at", "updated_at",
			}),
		}).
		Create(&rec).Error
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).First(&rec, "token = ?", strings.TrimSpace(token)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", token).Error
}

// PurgeExpired removes all expired sessions and reports how many went.
func (s *SessionStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&sessionRecord{})
	return res.RowsAffected, res.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

func toRecord(session *domain.Session) sessionRecord {
	rec := sessionRecord{
		Token:        session.Token,
		LoggedIn:     session.LoggedIn,
		OAuthState:   session.OAuthState,
		CodeVerifier: session.CodeVerifier,
		ExpiresAt:    session.ExpiresAt,
		CreatedAt:    session.CreatedAt,
	}
	if id := session.Identity; id != nil {
		rec.UserID = &id.UserID
		rec.Email = optional(id.Email)
		rec.Nickname = optional(id.Nickname)
		rec.Provider = optional(id.Provider)
	}
	return rec
}

func toDomain(rec sessionRecord) *domain.Session {
	session := &domain.Session{
		Token:        rec.Token,
		LoggedIn:     rec.LoggedIn,
		OAuthState:   rec.OAuthState,
		CodeVerifier: rec.CodeVerifier,
		CreatedAt:    rec.CreatedAt,
		ExpiresAt:    rec.ExpiresAt,
	}
	if rec.UserID != nil && *rec.UserID != "" {
		session.Identity = &domain.Identity{
			UserID:   *rec.UserID,
			Email:    deref(rec.Email),
			Nickname: deref(rec.Nickname),
			Provider: deref(rec.Provider),
		}
	}
	return session
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

var _ ports.SessionStore = (*SessionStore)(nil)
