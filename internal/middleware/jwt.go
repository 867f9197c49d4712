package middleware

import (
	"net/http"
	"strings"

	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// Claims is the authenticated identity extracted once per request. Handlers
// read it through CurrentUser instead of fishing raw keys out of the context.
type Claims struct {
	UserID  string
	Email   string
	Name    string
	IsAdmin bool
}

// AuthRequired validates the identity cookie (or a Bearer header as a
// fallback) and stores the typed claims in the gin context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token"})
			c.Abort()
			return
		}

		mapClaims, err := utils.ParseJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			c.Abort()
			return
		}

		userID, ok := mapClaims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			c.Abort()
			return
		}

		claims := Claims{UserID: userID}
		if email, ok := mapClaims["email"].(string); ok {
			claims.Email = email
		}
		if name, ok := mapClaims["name"].(string); ok {
			claims.Name = name
		}
		if isAdmin, ok := mapClaims["is_admin"].(bool); ok {
			claims.IsAdmin = isAdmin
		}

		c.Set(claimsKey, claims)
		// kept for the rate limiters that only need the id
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// CurrentUser returns the claims put in place by AuthRequired.
func CurrentUser(c *gin.Context) (Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(utils.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
