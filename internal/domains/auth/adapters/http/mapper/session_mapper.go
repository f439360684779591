package mapper

import (
	authdomain "github.com/ssanjae/offline-store/internal/domains/auth/domain"
)

// Session is the JSON shape of the login flag store.
type Session struct {
	LoggedIn     bool    `json:"loggedIn"`
	UserID       *string `json:"userId,omitempty"`
	Email        *string `json:"email,omitempty"`
	Nickname     *string `json:"nickname,omitempty"`
	Provider     *string `json:"provider,omitempty"`
	OAuthEnabled bool    `json:"oauthEnabled"`
}

func FromDomainSession(s *authdomain.Session, oauthEnabled bool) Session {
	out := Session{OAuthEnabled: oauthEnabled}
	if s == nil {
		return out
	}
	out.LoggedIn = s.LoggedIn
	if id := s.Identity; id != nil {
		out.UserID = nonEmpty(id.UserID)
		out.Email = nonEmpty(id.Email)
		out.Nickname = nonEmpty(id.Nickname)
		out.Provider = nonEmpty(id.Provider)
	}
	return out
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
