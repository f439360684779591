package storefrontserver

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	authdomain "github.com/ssanjae/offline-store/internal/domains/auth/domain"
	authports "github.com/ssanjae/offline-store/internal/domains/auth/ports"
	cartports "github.com/ssanjae/offline-store/internal/domains/cart/ports"
	catalogdomain "github.com/ssanjae/offline-store/internal/domains/catalog/domain"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

const (
	resetDoneMessage     = "로그인 기록 삭제 완료"
	noSessionMessage     = "세션이 없습니다. 다시 로그인 해주세요."
	sessionFailedPrefix  = "세션 확인 실패: "
	notConfiguredMessage = "데이터 저장소 환경변수(SUPABASE_URL, SUPABASE_ANON_KEY)가 비어있음"
	oauthDisabledMessage = "카카오 로그인이 설정되지 않았습니다."
)

// PageAPI renders the storefront screens.
type PageAPI struct {
	sessions *SessionAPI
	catalog  catalogports.Service
	cart     cartports.Service
	logger   *slog.Logger
}

func NewPageAPI(sessions *SessionAPI, catalog catalogports.Service, cart cartports.Service, logger *slog.Logger) PageAPI {
	if logger == nil {
		logger = slog.Default()
	}
	return PageAPI{sessions: sessions, catalog: catalog, cart: cart, logger: logger}
}

type authPage struct {
	Session      *authdomain.Session
	OAuthEnabled bool
	Notice       string
	Error        string
}

type callbackPage struct {
	Message string
}

type productRow struct {
	Product      *catalogdomain.Product
	Quantity     int64
	CanIncrement bool
}

type productsPage struct {
	Session     *authdomain.Session
	Notices     []*catalogdomain.Notice
	NoticesErr  string
	Dates       []*catalogdomain.PickupDate
	DatesErr    string
	Products    []productRow
	ProductsErr string
	Cart        *cartports.View
	CartErr     string
	Flash       string
}

// Get /
func (api *PageAPI) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/products")
}

// Get /auth
func (api *PageAPI) AuthScreen(c *gin.Context) {
	page := authPage{Session: sessionFrom(c), OAuthEnabled: api.sessions.auth.OAuthEnabled()}
	if c.Query("reset") == "1" {
		page.Notice = resetDoneMessage
	}
	page.Error = c.Query("error")
	c.HTML(http.StatusOK, "auth.html", page)
}

// Post /auth/login
func (api *PageAPI) StubLogin(c *gin.Context) {
	session, err := api.sessions.auth.StubLogin(c.Request.Context(), sessionToken(c))
	if err != nil {
		api.redirectWithError(c, "/auth", err)
		return
	}
	api.sessions.bind(c, session)
	c.Redirect(http.StatusSeeOther, "/products")
}

// Post /auth/reset
func (api *PageAPI) ResetLogin(c *gin.Context) {
	if _, err := api.sessions.resetSession(c); err != nil {
		api.redirectWithError(c, "/auth", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/auth?reset=1")
}

// Get /auth/kakao
func (api *PageAPI) BeginOAuth(c *gin.Context) {
	if !api.sessions.auth.OAuthEnabled() {
		c.HTML(http.StatusServiceUnavailable, "auth.html", authPage{Session: sessionFrom(c), Error: oauthDisabledMessage})
		return
	}
	session, authorizeURL, err := api.sessions.auth.BeginOAuth(c.Request.Context(), sessionToken(c))
	if err != nil {
		api.redirectWithError(c, "/auth", err)
		return
	}
	api.sessions.bind(c, session)
	c.Redirect(http.StatusFound, authorizeURL)
}

// Get /auth/callback
// The provider redirects here with code and state, or with an error description.
func (api *PageAPI) OAuthCallback(c *gin.Context) {
	if desc := firstNonEmpty(c.Query("error_description"), c.Query("error")); desc != "" {
		c.HTML(http.StatusUnauthorized, "callback.html", callbackPage{Message: sessionFailedPrefix + desc})
		return
	}
	session, err := api.sessions.auth.CompleteOAuth(c.Request.Context(), sessionToken(c), c.Query("code"), c.Query("state"))
	if session != nil {
		api.sessions.bind(c, session)
	}
	if err != nil {
		api.logger.WarnContext(c.Request.Context(), "oauth callback failed", slog.String("error", err.Error()))
		c.HTML(http.StatusUnauthorized, "callback.html", callbackPage{Message: callbackMessage(err)})
		return
	}
	c.Redirect(http.StatusFound, "/products")
}

// Get /products
func (api *PageAPI) ProductsScreen(c *gin.Context) {
	session := sessionFrom(c)
	if session == nil || !session.LoggedIn {
		c.Redirect(http.StatusFound, "/auth")
		return
	}
	ctx := c.Request.Context()
	front, err := api.catalog.Storefront(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	page := productsPage{
		Session:     session,
		Notices:     front.Notices.Rows,
		NoticesErr:  sectionMessage(front.Notices.Err),
		Dates:       front.PickupDates.Rows,
		DatesErr:    sectionMessage(front.PickupDates.Err),
		ProductsErr: sectionMessage(front.Products.Err),
		Flash:       c.Query("error"),
	}
	view, err := api.cart.View(ctx, session.Token)
	if err != nil {
		page.CartErr = sectionMessage(err)
		view = &cartports.View{}
	}
	page.Cart = view

	quantities := make(map[int64]int64, len(view.Lines))
	for _, line := range view.Lines {
		quantities[line.Product.ID] = line.Quantity
	}
	for _, p := range front.Products.Rows {
		q := quantities[p.ID]
		page.Products = append(page.Products, productRow{
			Product:      p,
			Quantity:     q,
			CanIncrement: p.Active() && q < p.AvailableStock(),
		})
	}
	c.HTML(http.StatusOK, "products.html", page)
}

// Post /cart/items/:productId/increment
func (api *PageAPI) CartIncrement(c *gin.Context) {
	api.cartForm(c, func(token string) error {
		id, err := parseProductID(c.Param("productId"))
		if err != nil {
			return errInvalidProductParam
		}
		_, err = api.cart.Increment(c.Request.Context(), token, id)
		return err
	})
}

// Post /cart/items/:productId/decrement
func (api *PageAPI) CartDecrement(c *gin.Context) {
	api.cartForm(c, func(token string) error {
		id, err := parseProductID(c.Param("productId"))
		if err != nil {
			return errInvalidProductParam
		}
		_, err = api.cart.Decrement(c.Request.Context(), token, id)
		return err
	})
}

// Post /cart/pickup-date
func (api *PageAPI) CartPickupDate(c *gin.Context) {
	api.cartForm(c, func(token string) error {
		_, err := api.cart.SelectPickupDate(c.Request.Context(), token, c.PostForm("date"))
		return err
	})
}

// Post /cart/summary
func (api *PageAPI) CartSummary(c *gin.Context) {
	api.cartForm(c, func(token string) error {
		open := c.PostForm("open") == "1"
		_, err := api.cart.ToggleSummary(c.Request.Context(), token, open)
		return err
	})
}

var errInvalidProductParam = errors.New("product id must be a positive integer")

func (api *PageAPI) cartForm(c *gin.Context, fn func(token string) error) {
	session := sessionFrom(c)
	if session == nil || !session.LoggedIn {
		c.Redirect(http.StatusSeeOther, "/auth")
		return
	}
	if err := fn(session.Token); err != nil {
		api.redirectWithError(c, "/products", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/products")
}

func (api *PageAPI) redirectWithError(c *gin.Context, target string, err error) {
	api.logger.WarnContext(c.Request.Context(), "form action failed",
		slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	c.Redirect(http.StatusSeeOther, target+"?error="+url.QueryEscape(sectionMessage(err)))
}

func callbackMessage(err error) string {
	if errors.Is(err, authports.ErrNoSession) {
		return noSessionMessage
	}
	return sessionFailedPrefix + err.Error()
}

// sectionMessage is the text shown after "오류: " for a failed read.
func sectionMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, catalogports.ErrNotConfigured) {
		return notConfiguredMessage
	}
	return err.Error()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
