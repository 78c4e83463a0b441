package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/repository"
)

type fakeAccounts map[string]struct {
	password string
	user     domain.User
}

func (f fakeAccounts) Verify(username, password string) (*domain.User, error) {
	a, ok := f[username]
	if !ok || a.password != password {
		return nil, domain.ErrInvalidCredentials
	}
	u := a.user
	return &u, nil
}

func newAuthService() *AuthService {
	accounts := fakeAccounts{
		"asha": {password: "pw", user: domain.User{ID: "u-1", Username: "asha", Role: domain.RoleClient}},
		"ops":  {password: "pw", user: domain.User{ID: "a-1", Username: "ops", Role: domain.RoleAdmin}},
	}
	return NewAuthService(accounts, repository.NewMemorySessionRepository(), time.Hour)
}

func TestAuthenticate(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	u, err := s.Authenticate(ctx, domain.RoleClient, domain.Credentials{Username: "asha", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	tests := []struct {
		name  string
		role  domain.Role
		creds domain.Credentials
	}{
		{"wrong password", domain.RoleClient, domain.Credentials{Username: "asha", Password: "nope"}},
		{"role mismatch", domain.RoleAdmin, domain.Credentials{Username: "asha", Password: "pw"}},
		{"blank username", domain.RoleClient, domain.Credentials{Password: "pw"}},
		{"blank password", domain.RoleClient, domain.Credentials{Username: "asha"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Authenticate(ctx, tt.role, tt.creds)
			assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
		})
	}
}

func TestLoginResolveLogout(t *testing.T) {
	s := newAuthService()
	ctx := context.Background()

	token, u, err := s.Login(ctx, domain.RoleAdmin, domain.Credentials{Username: "ops", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, u.IsAdmin())

	resolved, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a-1", resolved.ID)

	require.NoError(t, s.Logout(ctx, token))
	_, err = s.Resolve(ctx, token)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f fakeVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestFirebaseResolver(t *testing.T) {
	r := NewFirebaseResolver(fakeVerifier{token: &auth.Token{
		UID:    "fb-1",
		Claims: map[string]interface{}{"role": "admin", "email": "ops@zerobuild.ai", "name": "Ops"},
	}})
	u, err := r.Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", u.ID)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.Equal(t, "ops@zerobuild.ai", u.Username)
	assert.Equal(t, "Ops", u.DisplayName)

	r = NewFirebaseResolver(fakeVerifier{token: &auth.Token{UID: "fb-2", Claims: map[string]interface{}{"email": "c@x.io"}}})
	u, err = r.Resolve(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, u.Role)
	assert.Equal(t, "c@x.io", u.DisplayName)

	r = NewFirebaseResolver(fakeVerifier{err: errors.New("expired")})
	_, err = r.Resolve(context.Background(), "tok")
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}
