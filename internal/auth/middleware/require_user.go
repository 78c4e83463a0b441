package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

// Resolver maps a bearer token to a user. Session and Firebase resolvers
// both satisfy it.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// RequireUser validates the bearer token and stores the user in context
func RequireUser(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUser, user)
		c.Set(auth.CtxToken, token)
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
