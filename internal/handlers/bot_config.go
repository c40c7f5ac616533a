package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/middleware"
	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// BotConfigRequest is the payload for creating a bot configuration
type BotConfigRequest struct {
	BotType    string          `json:"bot_type" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	ConfigJSON json.RawMessage `json:"config_json"`
}

// BotActiveRequest toggles a bot's active flag
type BotActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// BotConfigHandler serves the bot configuration collection.
type BotConfigHandler struct {
	bots store.BotConfigStore
}

// NewBotConfigHandler builds the bot config handler.
func NewBotConfigHandler(bots store.BotConfigStore) *BotConfigHandler {
	return &BotConfigHandler{bots: bots}
}

// List returns the caller's bot configurations
func (h *BotConfigHandler) List(c *gin.Context) {
	session := middleware.CurrentSession(c)

	bots, err := h.bots.ListByUser(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bots)
}

// Create stores a new bot configuration, inactive by default
func (h *BotConfigHandler) Create(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req BotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cfg := models.BotConfig{
		ID:         uuid.New(),
		UserID:     session.UserID,
		BotType:    models.BotType(req.BotType),
		Name:       req.Name,
		IsActive:   false,
		ConfigJSON: req.ConfigJSON,
	}
	if err := h.bots.Insert(c.Request.Context(), &cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// SetActive starts or stops a bot
func (h *BotConfigHandler) SetActive(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req BotActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.bots.SetActive(c.Request.Context(), id, session.UserID, *req.IsActive); err != nil {
		respondStoreError(c, err)
		return
	}

	// Starting a bot stamps its last run.
	if *req.IsActive {
		if err := h.bots.Touch(c.Request.Context(), id, session.UserID); err != nil {
			log.Warnf("Failed to stamp last run for bot %s: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bot updated"})
}

// Status reports whether a bot is running and when it last ran
func (h *BotConfigHandler) Status(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	bot, err := h.bots.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if bot.UserID != session.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	status := "stopped"
	if bot.IsActive {
		status = "running"
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        bot.ID,
		"name":      bot.Name,
		"bot_type":  bot.BotType,
		"is_active": bot.IsActive,
		"last_run":  bot.LastRun,
		"status":    status,
	})
}
