package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/session"
)

// ContextOwnerID is the gin context key carrying the authenticated identity.
const ContextOwnerID = "ownerID"

// RequireSession validates the opaque session token from the Authorization
// header against the identity in X-Owner-ID. Validation refreshes the
// session's last-activity time.
func RequireSession(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID := c.GetHeader("X-Owner-ID")
		authHeader := c.GetHeader("Authorization")
		if ownerID == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session credentials"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if !sessions.Validate(c.Request.Context(), ownerID, token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(ContextOwnerID, ownerID)
		c.Next()
	}
}
