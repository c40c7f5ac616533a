package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"cerberuschain/internal/dashboard"
	"cerberuschain/internal/middleware"
	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// TradeRequest is the payload for recording a trade
type TradeRequest struct {
	WalletID     string          `json:"wallet_id" binding:"required"`
	TokenAddress string          `json:"token_address" binding:"required"`
	TokenSymbol  string          `json:"token_symbol"`
	TradeType    string          `json:"trade_type" binding:"required"`
	SolAmount    decimal.Decimal `json:"sol_amount" binding:"required"`
}

// TradeHandler serves the trade collection.
type TradeHandler struct {
	trades  store.TradeStore
	wallets store.WalletStore
}

// NewTradeHandler builds the trade handler.
func NewTradeHandler(trades store.TradeStore, wallets store.WalletStore) *TradeHandler {
	return &TradeHandler{trades: trades, wallets: wallets}
}

// List returns the caller's most recent trades, newest first
func (h *TradeHandler) List(c *gin.Context) {
	session := middleware.CurrentSession(c)

	trades, err := h.trades.ListRecentByUser(c.Request.Context(), session.UserID, dashboard.TradeHistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trades)
}

// Create records a trade. The wallet must belong to the caller.
func (h *TradeHandler) Create(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tradeType := models.TradeType(req.TradeType)
	if tradeType != models.TradeTypeBuy && tradeType != models.TradeTypeSell {
		c.JSON(http.StatusBadRequest, gin.H{"error": "trade_type must be buy or sell"})
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet_id format"})
		return
	}

	wallet, err := h.wallets.GetByID(c.Request.Context(), walletID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if wallet.UserID != session.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	trade := models.Trade{
		ID:           uuid.New(),
		UserID:       session.UserID,
		WalletID:     walletID,
		TokenAddress: req.TokenAddress,
		TokenSymbol:  req.TokenSymbol,
		TradeType:    tradeType,
		SolAmount:    req.SolAmount,
		Status:       models.TradeStatusPending,
	}
	if err := h.trades.Insert(c.Request.Context(), &trade); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trade)
}

// Cancel marks a pending trade cancelled. Trades past pending are not
// cancellable and report not found.
func (h *TradeHandler) Cancel(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.trades.Cancel(c.Request.Context(), id, session.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trade not found or cannot be cancelled"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trade cancelled successfully"})
}
