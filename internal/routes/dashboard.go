package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up all routes related to the dashboard
func SetupDashboardRoutes(r *gin.Engine, h Handlers) {
	dash := r.Group("/dashboard", h.Session)
	{
		dash.GET("", h.Dashboard.View)
		dash.GET("/:tab", h.Dashboard.TabView)
		dash.PUT("/tab", h.Dashboard.SelectTab)
	}
}
