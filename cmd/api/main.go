package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/dashboard"
	"cerberuschain/internal/handlers"
	"cerberuschain/internal/middleware"
	"cerberuschain/internal/routes"
	"cerberuschain/internal/store"
	"cerberuschain/pkg/config"
	"cerberuschain/pkg/health"
)

const version = "0.1.0"

func main() {
	// Initialize database
	config.InitDB()

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		config.ExecuteMigrations()
	}

	// Initialize RabbitMQ (optional, auth events are skipped if not configured)
	var publisher auth.EventPublisher
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		p, err := config.NewPublisher()
		if err != nil {
			log.Fatal("Failed to create publisher:", err)
		}
		defer p.Close()
		publisher = p
		log.Println("RabbitMQ initialized successfully")
	} else {
		log.Println("RabbitMQ not configured, skipping auth event publishing")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	tokenHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if err != nil || tokenHours <= 0 {
		tokenHours = 24
	}

	st := store.New(config.DB)
	provider := auth.NewGormProvider(config.DB, jwtSecret, time.Duration(tokenHours)*time.Hour)
	manager := auth.NewSessionManager(provider, st.Users, publisher)
	dashboards := dashboard.NewService(dashboard.NewLoader(st))

	var probe *health.Probe
	if probeURL := os.Getenv("HEALTH_PROBE_URL"); probeURL != "" {
		probe = health.NewProbe(probeURL)
	}

	// Set up router
	r := routes.SetupRouter(routes.Handlers{
		Auth:      handlers.NewAuthHandler(manager, dashboards, st.Users),
		Dashboard: handlers.NewDashboardHandler(dashboards),
		Wallets:   handlers.NewWalletHandler(st.Wallets),
		Trades:    handlers.NewTradeHandler(st.Trades, st.Wallets),
		Bots:      handlers.NewBotConfigHandler(st.Bots),
		Health:    handlers.NewHealthHandler(probe, version),
		Session:   middleware.SessionMiddleware(manager),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
