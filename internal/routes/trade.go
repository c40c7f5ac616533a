package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupTradeRoutes sets up all routes related to trades
func SetupTradeRoutes(r *gin.Engine, h Handlers) {
	trades := r.Group("/trades", h.Session)
	{
		trades.GET("", h.Trades.List)
		trades.POST("", h.Trades.Create)
		trades.POST("/:id/cancel", h.Trades.Cancel)
	}
}
