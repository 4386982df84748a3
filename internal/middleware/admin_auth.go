package middleware

import (
	"net/http"

	"bizops-dashboard/pkg/token"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request only when the authenticated token carries role.
// It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ClaimsKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Missing authentication context"})
			return
		}
		claims, ok := value.(*token.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Unexpected authentication context"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
