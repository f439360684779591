package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/ssanjae/offline-store/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/ssanjae/offline-store/internal/domains/cart/ports"
	apierrors "github.com/ssanjae/offline-store/internal/shared/errors"
)

type CartAPI struct {
	service cartports.Service
}

func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Get /api/cart
func (api *CartAPI) GetCart(c *gin.Context) {
	view, err := api.service.View(c.Request.Context(), sessionToken(c))
	api.respond(c, view, err)
}

// Post /api/cart/items/:productId/increment
// At the stock bound the cart is returned unchanged.
func (api *CartAPI) IncrementItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	view, err := api.service.Increment(c.Request.Context(), sessionToken(c), productID)
	api.respond(c, view, err)
}

// Post /api/cart/items/:productId/decrement
func (api *CartAPI) DecrementItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	view, err := api.service.Decrement(c.Request.Context(), sessionToken(c), productID)
	api.respond(c, view, err)
}

// Put /api/cart/items/:productId
func (api *CartAPI) SetItemQuantity(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	var req cartmapper.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.DefaultResponder.ValidationFailed(c, map[string]string{"quantity": "quantity is required"})
		return
	}
	view, err := api.service.SetQuantity(c.Request.Context(), sessionToken(c), productID, *req.Quantity)
	api.respond(c, view, err)
}

// Delete /api/cart/items/:productId
func (api *CartAPI) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	view, err := api.service.Remove(c.Request.Context(), sessionToken(c), productID)
	api.respond(c, view, err)
}

// Put /api/cart/pickup-date
func (api *CartAPI) SetPickupDate(c *gin.Context) {
	var req cartmapper.PickupDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.DefaultResponder.BadRequest(c, "request body must be a JSON object")
		return
	}
	view, err := api.service.SelectPickupDate(c.Request.Context(), sessionToken(c), req.Date)
	api.respond(c, view, err)
}

func (api *CartAPI) respond(c *gin.Context, view *cartports.View, err error) {
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromView(view))
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := parseProductID(c.Param("productId"))
	if err != nil {
		apierrors.DefaultResponder.ValidationFailed(c, map[string]string{"productId": "must be a positive integer"})
		return 0, false
	}
	return id, true
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
