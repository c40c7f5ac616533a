package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cerberuschain/internal/auth"
)

// authErrorStatus maps an auth-flow error to its HTTP status.
// Validation failures never reached the provider; auth failures carry
// the provider message verbatim.
func authErrorStatus(err error) int {
	var validationErr *auth.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// respondError writes the error message as the handler's JSON body.
func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondStoreError maps store errors: missing record vs failure.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
