package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/dashboard"
	"cerberuschain/internal/middleware"
	"cerberuschain/internal/store"
)

// RegisterRequest is the sign-up form payload
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest is the sign-in form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves the sign-in/sign-up/sign-out flow.
type AuthHandler struct {
	manager    *auth.SessionManager
	dashboards *dashboard.Service
	users      store.UserStore
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(manager *auth.SessionManager, dashboards *dashboard.Service, users store.UserStore) *AuthHandler {
	return &AuthHandler{manager: manager, dashboards: dashboards, users: users}
}

// Register creates an account. Validation failures (mismatch, weak
// password) are rejected here without any provider call.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := h.manager.SignUp(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(c, authErrorStatus(err), err)
		return
	}

	h.openDashboard(c, session)
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// Login authenticates credentials and opens the dashboard session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := h.manager.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, authErrorStatus(err), err)
		return
	}

	h.openDashboard(c, session)
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Logout invalidates the session. Always succeeds for the caller:
// local state is cleared even when the remote invalidation fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	h.dashboards.Close(session.Token)
	h.manager.SignOut(c.Request.Context(), session)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	session := middleware.CurrentSession(c)

	user, err := h.users.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// openDashboard loads the snapshot for a fresh session. A load failure
// only delays the dashboard; it never fails the auth call.
func (h *AuthHandler) openDashboard(c *gin.Context, session *auth.Session) {
	if _, err := h.dashboards.Open(c.Request.Context(), session.Token, session.UserID); err != nil {
		log.Warnf("Dashboard load after auth failed: %v", err)
	}
}
