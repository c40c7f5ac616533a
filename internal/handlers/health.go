package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cerberuschain/pkg/health"
)

// ServiceName identifies this backend in health payloads.
const ServiceName = "cerberus-hydra-backend"

// HealthHandler serves the service's own health payload and the
// informational backend-status card.
type HealthHandler struct {
	probe   *health.Probe
	version string
}

// NewHealthHandler builds the health handler. probe may be nil when no
// probe URL is configured.
func NewHealthHandler(probe *health.Probe, version string) *HealthHandler {
	return &HealthHandler{probe: probe, version: version}
}

// Health reports this service's status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, health.Status{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// BackendStatus renders the probe card. Probe failures degrade to a
// "Connection Failed" card, never an error response.
func (h *HealthHandler) BackendStatus(c *gin.Context) {
	if h.probe == nil {
		c.JSON(http.StatusOK, health.Card{Connected: false, Display: health.ConnectionFailed})
		return
	}
	c.JSON(http.StatusOK, h.probe.CheckCard(c.Request.Context()))
}
