package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handler sets the router mounts.
type ApiHandleFunctions struct {
	SessionAPI SessionAPI
	CatalogAPI CatalogAPI
	CartAPI    CartAPI
	PageAPI    PageAPI
	SystemAPI  SystemAPI
}

// NewRouter returns a new router with the storefront templates loaded.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	sessions := handleFunctions.SessionAPI.middleware()
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if route.Name != "Healthz" && route.Name != "Metrics" {
			handlers = append([]gin.HandlerFunc{sessions}, handlers...)
		}
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	return router, nil
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(h ApiHandleFunctions) []Route {
	api := &h
	requireLogin := api.SessionAPI.requireLogin
	return []Route{
		// screens
		{"Home", http.MethodGet, "/", api.PageAPI.Home},
		{"AuthScreen", http.MethodGet, "/auth", api.PageAPI.AuthScreen},
		{"StubLogin", http.MethodPost, "/auth/login", api.PageAPI.StubLogin},
		{"ResetLogin", http.MethodPost, "/auth/reset", api.PageAPI.ResetLogin},
		{"BeginOAuth", http.MethodGet, "/auth/kakao", api.PageAPI.BeginOAuth},
		{"OAuthCallback", http.MethodGet, "/auth/callback", api.PageAPI.OAuthCallback},
		{"ProductsScreen", http.MethodGet, "/products", api.PageAPI.ProductsScreen},
		{"CartIncrementForm", http.MethodPost, "/cart/items/:productId/increment", api.PageAPI.CartIncrement},
		{"CartDecrementForm", http.MethodPost, "/cart/items/:productId/decrement", api.PageAPI.CartDecrement},
		{"CartPickupDateForm", http.MethodPost, "/cart/pickup-date", api.PageAPI.CartPickupDate},
		{"CartSummaryForm", http.MethodPost, "/cart/summary", api.PageAPI.CartSummary},

		// JSON API
		{"GetSession", http.MethodGet, "/api/session", api.SessionAPI.GetSession},
		{"StubLoginJSON", http.MethodPost, "/api/session/login", api.SessionAPI.Login},
		{"ResetSession", http.MethodDelete, "/api/session", api.SessionAPI.Reset},
		{"ListProducts", http.MethodGet, "/api/products", chain(requireLogin, api.CatalogAPI.ListProducts)},
		{"ListPickupDates", http.MethodGet, "/api/pickup-dates", chain(requireLogin, api.CatalogAPI.ListPickupDates)},
		{"ListNotices", http.MethodGet, "/api/notices", chain(requireLogin, api.CatalogAPI.ListNotices)},
		{"GetCart", http.MethodGet, "/api/cart", chain(requireLogin, api.CartAPI.GetCart)},
		{"IncrementCartItem", http.MethodPost, "/api/cart/items/:productId/increment", chain(requireLogin, api.CartAPI.IncrementItem)},
		{"DecrementCartItem", http.MethodPost, "/api/cart/items/:productId/decrement", chain(requireLogin, api.CartAPI.DecrementItem)},
		{"SetCartItemQuantity", http.MethodPut, "/api/cart/items/:productId", chain(requireLogin, api.CartAPI.SetItemQuantity)},
		{"RemoveCartItem", http.MethodDelete, "/api/cart/items/:productId", chain(requireLogin, api.CartAPI.RemoveItem)},
		{"SetPickupDate", http.MethodPut, "/api/cart/pickup-date", chain(requireLogin, api.CartAPI.SetPickupDate)},

		// operations
		{"Healthz", http.MethodGet, "/healthz", api.SystemAPI.Healthz},
		{"Metrics", http.MethodGet, "/metrics", api.SystemAPI.Metrics},
	}
}

func chain(handlers ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range handlers {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
