package middleware

import (
	"net/http"
	"strings"

	"bizops-dashboard/internal/service"
	"bizops-dashboard/pkg/log"

	"github.com/gin-gonic/gin"
)

// ClaimsKey is the gin context key holding the *token.Claims of an authenticated request.
const ClaimsKey = "claims"

// AuthMiddleware requires a valid, unrevoked bearer access token.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing authorization header"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		claims, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			log.Warnf("rejected token on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
