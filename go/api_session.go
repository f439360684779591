package storefrontserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authhttpmapper "github.com/ssanjae/offline-store/internal/domains/auth/adapters/http/mapper"
	authdomain "github.com/ssanjae/offline-store/internal/domains/auth/domain"
	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
	cartports "github.com/ssanjae/offline-store/internal/domains/cart/ports"
	apierrors "github.com/ssanjae/offline-store/internal/shared/errors"
)

// SessionCookieName is the cookie that carries the opaque session token.
const SessionCookieName = "ssanjae_session"

const sessionContextKey = "storefront.session"

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

// SessionAPI owns the session cookie and the login flag endpoints.
type SessionAPI struct {
	auth   authports.Service
	cart   cartports.Service
	cookie CookieConfig
}

func NewSessionAPI(auth authports.Service, cart cartports.Service, cookie CookieConfig) SessionAPI {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 24 * time.Hour
	}
	return SessionAPI{auth: auth, cart: cart, cookie: cookie}
}

// middleware resolves the session for every request and refreshes the cookie.
func (api *SessionAPI) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookieName)
		session, err := api.auth.Current(c.Request.Context(), token)
		if err != nil {
			respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
			return
		}
		api.bind(c, session)
		c.Next()
	}
}

// requireLogin rejects JSON requests from sessions without the login flag.
func (api *SessionAPI) requireLogin(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil || !session.LoggedIn {
		apierrors.DefaultResponder.Unauthorized(c, "login required")
	}
}

func (api *SessionAPI) bind(c *gin.Context, session *authdomain.Session) {
	c.Set(sessionContextKey, session)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, session.Token, int(api.cookie.MaxAge.Seconds()), "/", "", api.cookie.Secure, true)
}

func sessionFrom(c *gin.Context) *authdomain.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := v.(*authdomain.Session)
	return session
}

func sessionToken(c *gin.Context) string {
	if session := sessionFrom(c); session != nil {
		return session.Token
	}
	return ""
}

// Get /api/session
func (api *SessionAPI) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, authhttpmapper.FromDomainSession(sessionFrom(c), api.auth.OAuthEnabled()))
}

// Post /api/session/login
// Sets the login flag without a provider round trip.
func (api *SessionAPI) Login(c *gin.Context) {
	session, err := api.auth.StubLogin(c.Request.Context(), sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	api.bind(c, session)
	c.JSON(http.StatusOK, authhttpmapper.FromDomainSession(session, api.auth.OAuthEnabled()))
}

// Delete /api/session
// Removes the login record and forgets the cart.
func (api *SessionAPI) Reset(c *gin.Context) {
	session, err := api.resetSession(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authhttpmapper.FromDomainSession(session, api.auth.OAuthEnabled()))
}

func (api *SessionAPI) resetSession(c *gin.Context) (*authdomain.Session, error) {
	ctx := c.Request.Context()
	session, err := api.auth.Reset(ctx, sessionToken(c))
	if err != nil {
		return nil, err
	}
	if err := api.cart.Clear(ctx, session.Token); err != nil {
		return nil, err
	}
	api.bind(c, session)
	return session, nil
}
