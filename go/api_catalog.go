package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/ssanjae/offline-store/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/ssanjae/offline-store/internal/domains/catalog/ports"
)

type CatalogAPI struct {
	service catalogports.Service
}

func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /api/products
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

// Get /api/pickup-dates
// Only open dates are listed.
func (api *CatalogAPI) ListPickupDates(c *gin.Context) {
	dates, err := api.service.ListOpenPickupDates(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainPickupDates(dates))
}

// Get /api/notices
func (api *CatalogAPI) ListNotices(c *gin.Context) {
	notices, err := api.service.ListNotices(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainNotices(notices))
}
