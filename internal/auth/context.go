package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

const (
	CtxUser  = "auth_user"
	CtxToken = "auth_token"
)

// CurrentUser extracts the authenticated user from the Gin context.
// This is set by middleware.RequireUser; nil when absent.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// CurrentToken returns the bearer token the request authenticated with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(CtxToken)
}
