package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemAPI struct {
	metrics http.Handler
}

// NewSystemAPI serves metrics from the given handler. A nil handler disables /metrics.
func NewSystemAPI(metrics http.Handler) SystemAPI {
	return SystemAPI{metrics: metrics}
}

// Get /healthz
func (api *SystemAPI) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Get /metrics
func (api *SystemAPI) Metrics(c *gin.Context) {
	if api.metrics == nil {
		c.Status(http.StatusNotFound)
		return
	}
	api.metrics.ServeHTTP(c.Writer, c.Request)
}
