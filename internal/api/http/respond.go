package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
	"github.com/zerobuild-ai/zerobuild-backend/internal/synthesis"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

// WriteError maps a service error to a status code and the
// {"ok": false, "error": ...} envelope.
func WriteError(c *gin.Context, operation string, err error) {
	logger := logging.New(c.Request.Context())

	if ve, ok := validation.AsError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "details": ve.Violations})
		return
	}
	if errors.Is(err, authdomain.ErrUnauthenticated) || errors.Is(err, authdomain.ErrInvalidRole) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		logger.LogWarnf(operation, "deadline exceeded: %v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"ok": false, "error": "generation timed out"})
		return
	}
	if errors.Is(err, context.Canceled) {
		// client went away; status is for the access log only
		c.JSON(499, gin.H{"ok": false, "error": "request cancelled"})
		return
	}
	if ge, ok := synthesis.AsGatewayError(err); ok {
		logger.LogErrorf(operation, "gateway failure op=%s error=%v", ge.Op, ge.Err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "generation service unavailable", "op": ge.Op})
		return
	}

	logger.LogError(operation, err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
}
