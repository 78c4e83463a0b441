package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/repository"
)

// Authenticator checks credentials for a role. It returns
// domain.ErrInvalidCredentials when they do not match.
type Authenticator interface {
	Authenticate(ctx context.Context, role domain.Role, creds domain.Credentials) (*domain.User, error)
}

// TokenResolver maps a bearer token to a user.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

type AccountVerifier interface {
	Verify(username, password string) (*domain.User, error)
}

// AuthService authenticates against the accounts file and issues sessions.
type AuthService struct {
	accounts AccountVerifier
	sessions repository.SessionRepository
	ttl      time.Duration
}

var (
	_ Authenticator = (*AuthService)(nil)
	_ TokenResolver = (*AuthService)(nil)
)

func NewAuthService(accounts AccountVerifier, sessions repository.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		ttl:      ttl,
	}
}

// Authenticate verifies creds and that the account holds the requested role.
// A role mismatch is reported as invalid credentials.
func (s *AuthService) Authenticate(_ context.Context, role domain.Role, creds domain.Credentials) (*domain.User, error) {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	u, err := s.accounts.Verify(creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and opens a session, returning its token.
func (s *AuthService) Login(ctx context.Context, role domain.Role, creds domain.Credentials) (string, *domain.User, error) {
	u, err := s.Authenticate(ctx, role, creds)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, u, s.ttl); err != nil {
		return "", nil, fmt.Errorf("open session: %w", err)
	}
	return token, u, nil
}

// Resolve returns the user holding the session token.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	u, err := s.sessions.Get(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	return u, err
}

// Logout revokes the session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
