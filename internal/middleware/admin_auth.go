package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyAuth guards inventory administration with a shared operator key sent in X-Admin-Key.
func AdminKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Key")
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin key missing or invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin key required"})
			return
		}
		c.Set(authMethodKey, AuthMethodAdminKey)
		c.Next()
	}
}
