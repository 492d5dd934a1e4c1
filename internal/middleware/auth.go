package middleware

import (
	"net/http"
	"strings"

	"github.com/YSWikcramatantri/Official-Website/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the admin session id between requests.
const SessionCookie = "admin_session"

// AdminAuth admits a request holding either a valid bearer token or a live
// session cookie. The two verifiers are independent; passing either one is
// enough.
func AdminAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				return
			}
			if _, err := auth.VerifyToken(parts[1]); err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.Next()
			return
		}

		if sessionID, err := c.Cookie(SessionCookie); err == nil {
			if auth.ValidateSession(c.Request.Context(), sessionID) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
	}
}
