package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cerberuschain/internal/dashboard"
	"cerberuschain/internal/middleware"
)

// TabRequest selects the active dashboard tab
type TabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// DashboardHandler serves the tab-based dashboard views.
type DashboardHandler struct {
	service *dashboard.Service
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// View renders the active tab. The snapshot is loaded once per
// session; repeat calls reuse it.
func (h *DashboardHandler) View(c *gin.Context) {
	session := middleware.CurrentSession(c)

	machine, err := h.service.Open(c.Request.Context(), session.Token, session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.BuildView(machine))
}

// TabView renders a named tab without switching the active one.
func (h *DashboardHandler) TabView(c *gin.Context) {
	session := middleware.CurrentSession(c)

	tab := dashboard.Tab(c.Param("tab"))
	if !dashboard.ValidTab(tab) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tab"})
		return
	}

	machine, err := h.service.Open(c.Request.Context(), session.Token, session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.BuildTabView(machine, tab))
}

// SelectTab switches the active tab. The loaded snapshot is reused,
// never reloaded.
func (h *DashboardHandler) SelectTab(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	machine, err := h.service.Open(c.Request.Context(), session.Token, session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := machine.SelectTab(dashboard.Tab(req.Tab)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard.BuildView(machine))
}
