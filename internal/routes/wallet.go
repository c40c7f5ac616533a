package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWalletRoutes sets up all routes related to wallets
func SetupWalletRoutes(r *gin.Engine, h Handlers) {
	wallets := r.Group("/wallets", h.Session)
	{
		wallets.GET("", h.Wallets.List)
		wallets.GET("/:id", h.Wallets.Get)
		wallets.POST("", h.Wallets.Create)
		wallets.PUT("/:id/deactivate", h.Wallets.Deactivate)
	}
}
