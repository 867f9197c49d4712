package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route to identities carrying the admin flag.
func RequireAdmin(c *gin.Context) {
	claims, ok := CurrentUser(c)
	if !ok || !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access only"})
		c.Abort()
		return
	}
	c.Next()
}
