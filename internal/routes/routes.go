package routes

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"cerberuschain/internal/handlers"
)

// Handlers bundles the constructed handlers and the session
// middleware for route setup.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Wallets   *handlers.WalletHandler
	Trades    *handlers.TradeHandler
	Bots      *handlers.BotConfigHandler
	Health    *handlers.HealthHandler
	Session   gin.HandlerFunc
}

// SetupRouter initializes and returns the Gin router with all routes configured
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())

	// Health endpoints stay open
	r.GET("/", h.Health.Health)
	r.GET("/health", h.Health.Health)
	r.GET("/status/backend", h.Health.BackendStatus)

	SetupAuthRoutes(r, h)
	SetupDashboardRoutes(r, h)
	SetupWalletRoutes(r, h)
	SetupTradeRoutes(r, h)
	SetupBotConfigRoutes(r, h)

	return r
}

// corsMiddleware allows the origins listed in ALLOWED_ORIGINS
// (comma-separated).
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var allowedOrigins []string
		if allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS"); allowedOriginsStr != "" {
			for _, o := range strings.Split(allowedOriginsStr, ",") {
				if trimmed := strings.TrimSpace(o); trimmed != "" {
					allowedOrigins = append(allowedOrigins, trimmed)
				}
			}
		}

		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
