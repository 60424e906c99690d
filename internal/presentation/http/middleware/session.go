package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionHeader is the header clients use to identify their session.
const SessionHeader = "X-Atelier-Session-ID"

// SessionKey is the gin context key the session ID is stored under.
const SessionKey = "sessionId"

// SessionMiddleware requires a session ID header on every request in the
// group and stashes it in the request context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + SessionHeader + " header",
			})
			return
		}
		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// GetSessionID pulls the session ID stashed by SessionMiddleware.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
