package handlers

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cerberuschain/internal/middleware"
	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// WalletRequest is the payload for registering a wallet
type WalletRequest struct {
	Name       string `json:"name" binding:"required"`
	PublicKey  string `json:"public_key" binding:"required"`
	WalletType string `json:"wallet_type"`
}

// WalletHandler serves the wallet collection.
type WalletHandler struct {
	wallets store.WalletStore
}

// NewWalletHandler builds the wallet handler.
func NewWalletHandler(wallets store.WalletStore) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// List returns the caller's active wallets
func (h *WalletHandler) List(c *gin.Context) {
	session := middleware.CurrentSession(c)

	wallets, err := h.wallets.ListActiveByUser(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// Get returns one of the caller's wallets by ID
func (h *WalletHandler) Get(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	wallet, err := h.wallets.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if wallet.UserID != session.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// Create registers an externally managed wallet. The public key must
// parse as a Solana address; no keys are generated or held here.
func (h *WalletHandler) Create(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, err := solana.PublicKeyFromBase58(req.PublicKey); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Solana public key"})
		return
	}

	walletType := models.WalletType(req.WalletType)
	if walletType == "" {
		walletType = models.WalletTypeTrading
	}

	wallet := models.Wallet{
		ID:         uuid.New(),
		UserID:     session.UserID,
		Name:       req.Name,
		PublicKey:  req.PublicKey,
		WalletType: walletType,
		IsActive:   true,
	}
	if err := h.wallets.Insert(c.Request.Context(), &wallet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wallet)
}

// Deactivate removes a wallet from dashboard display without deleting
// the record.
func (h *WalletHandler) Deactivate(c *gin.Context) {
	session := middleware.CurrentSession(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.wallets.SetActive(c.Request.Context(), id, session.UserID, false); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wallet deactivated"})
}
