package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cerberuschain/internal/auth"
)

// SessionKey is the gin context key the authenticated session is
// stored under.
const SessionKey = "session"

// SessionMiddleware restores the session for the request's bearer
// token and rejects the request when none exists.
func SessionMiddleware(manager *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		session, err := manager.Restore(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// BearerToken extracts the bearer token from the Authorization header,
// empty when absent or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// CurrentSession returns the session placed by SessionMiddleware.
func CurrentSession(c *gin.Context) *auth.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, _ := value.(*auth.Session)
	return session
}
