package service

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
)

// IDTokenVerifier is the part of the Firebase auth client the resolver uses.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseResolver resolves Firebase ID tokens. The role comes from the
// "role" custom claim and defaults to CLIENT.
type FirebaseResolver struct {
	verifier IDTokenVerifier
}

var _ TokenResolver = (*FirebaseResolver)(nil)

func NewFirebaseResolver(verifier IDTokenVerifier) *FirebaseResolver {
	return &FirebaseResolver{verifier: verifier}
}

func (r *FirebaseResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	decoded, err := r.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	u := &domain.User{ID: decoded.UID, Role: domain.RoleClient}
	if claim, ok := decoded.Claims["role"].(string); ok {
		if role, err := domain.ParseRole(claim); err == nil {
			u.Role = role
		}
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		u.Username = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		u.DisplayName = name
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	return u, nil
}
