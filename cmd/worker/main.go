package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/models"
	"cerberuschain/internal/schedule"
	"cerberuschain/internal/store"
	"cerberuschain/pkg/config"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	// Initialize database
	config.InitDB()

	st := store.New(config.DB)
	provider := auth.NewGormProvider(config.DB, os.Getenv("JWT_SECRET"), 24*time.Hour)

	// Maintenance jobs
	c := schedule.Start(provider, st)
	defer c.Stop()

	log.Info("Maintenance worker started")

	if os.Getenv("RABBITMQ_HOST") == "" {
		log.Info("RabbitMQ not configured, running scheduler only")
		select {}
	}

	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	msgConsumer, err := config.NewConsumer(auth.AuthEventQueue)
	if err != nil {
		log.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	log.Info("Auth event consumer started, waiting for messages...")

	err = msgConsumer.Consume(func(msg []byte) error {
		var event auth.AuthEventMessage
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Errorf("Failed to unmarshal auth event: %v", err)
			return err
		}

		userID, err := uuid.Parse(event.UserID)
		if err != nil {
			log.Errorf("Invalid user id in auth event: %v", err)
			return err
		}

		record := models.AuthEvent{
			UserID:    userID,
			Event:     event.Event,
			Email:     event.Email,
			CreatedAt: event.At,
		}
		if err := config.DB.Create(&record).Error; err != nil {
			log.Errorf("Failed to persist auth event: %v", err)
			return err
		}

		log.WithFields(log.Fields{
			"user_id": event.UserID,
			"event":   event.Event,
		}).Info("Auth event recorded")
		return nil
	})
	if err != nil {
		log.Fatal("Consumer failed: ", err)
	}
}
