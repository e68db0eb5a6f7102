package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chorechart/internal/core/services"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"

	// SessionCookieName carries the selected child's token between requests.
	SessionCookieName = "chorechart_session"

	ContextChildIDKey = "childID"
)

// SessionMiddleware resolves the active child from the session cookie, or
// from a Bearer token for non-browser clients. The cookie wins when both
// are present.
func SessionMiddleware(sessionService *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader(authorizationHeader)
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "no child selected"})
				c.Abort()
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) < 2 || fields[0] != authorizationType {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				c.Abort()
				return
			}
			tokenString = fields[1]
		}

		childID, err := sessionService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(ContextChildIDKey, childID)

		c.Next()
	}
}

func GetChildID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextChildIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
