package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vconfig-be/internal/token"
)

// Context keys under which the authenticated user is stored.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth returns a middleware that requires a valid bearer token and
// puts the user's id and email into the gin context.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header must be a bearer token",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
