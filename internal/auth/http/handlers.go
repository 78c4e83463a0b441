package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/logging"
)

// Login exchanges credentials for a session token. role defaults to CLIENT.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	role := domain.RoleClient
	if req.Role != "" {
		r, err := domain.ParseRole(req.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid role"})
			return
		}
		role = r
	}

	token, user, err := h.sessions.Login(c.Request.Context(), role, domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
			return
		}
		logging.New(c.Request.Context()).LogError("login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to open session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context(), auth.CurrentToken(c)); err != nil {
		logging.New(c.Request.Context()).LogError("logout", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to close session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the current user's profile
func (h *Handler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}
