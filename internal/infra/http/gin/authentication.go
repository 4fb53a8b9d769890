package ginserver

import (
	"crypto/subtle"
	"net/http"

	gin "github.com/gin-gonic/gin"
)

// AdminTokenAuth gates the admin routes behind a shared token passed in
// X-Admin-Token. This mirrors the demo's password prompt: a placeholder,
// not a security boundary. An empty configured token disables the gate.
func AdminTokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			return
		}
		c.Next()
	}
}
