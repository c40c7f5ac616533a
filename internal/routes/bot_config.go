package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupBotConfigRoutes sets up all routes related to bot configurations
func SetupBotConfigRoutes(r *gin.Engine, h Handlers) {
	bots := r.Group("/bots", h.Session)
	{
		bots.GET("", h.Bots.List)
		bots.POST("", h.Bots.Create)
		bots.PUT("/:id/active", h.Bots.SetActive)
		bots.GET("/:id/status", h.Bots.Status)
	}
}
