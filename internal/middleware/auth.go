package middleware

import (
	"net/http"
	"strings"

	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware checks for the presence and validity of a JWT token in the
// Authorization header and rejects the request when either is missing.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c, authService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a valid token is present but lets
// anonymous requests through. Listing endpoints use this so membership
// roles and favorite flags can ride along for signed-in viewers.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c, authService); ok {
			c.Set("userID", claims.UserID)
			c.Set("isAdmin", claims.IsAdmin)
		}
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || isAdmin != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// claimsFromHeader extracts and validates the "Bearer <token>" header.
func claimsFromHeader(c *gin.Context, authService service.AuthService) (*service.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
