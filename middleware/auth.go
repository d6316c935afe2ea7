package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopkart-backend/auth"
)

// Context keys under which the decoded claim is stored for handlers.
const (
	ContextUserID   = "userId"
	ContextUsername = "username"
)

// Auth validates the bearer token carried in the Authorization header. The
// header holds the raw token, without a "Bearer " prefix. Missing token is
// 401, anything failing verification (bad signature, expired, malformed)
// is 403.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
