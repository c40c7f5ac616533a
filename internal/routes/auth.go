package routes

import (
	"github.com/gin-gonic/gin"

	"cerberuschain/internal/middleware"
)

// SetupAuthRoutes sets up all routes related to authentication
func SetupAuthRoutes(r *gin.Engine, h Handlers) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	}))
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Session, h.Auth.Logout)
		authGroup.GET("/me", h.Session, h.Auth.Me)
	}
}
