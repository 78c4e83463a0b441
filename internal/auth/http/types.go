package http

import (
	"context"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

// Sessions is what the login endpoints need from the auth service.
type Sessions interface {
	Login(ctx context.Context, role domain.Role, creds domain.Credentials) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	sessions Sessions
}

func New(sessions Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type loginRequest struct {
	Role     string `json:"role"`
	Username string `json:"username"`
	Password string `json:"password"`
}
