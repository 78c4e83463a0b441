package domain

import (
	"errors"
	"strings"
)

// Role decides how record lookups are scoped for a user.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleAdmin  Role = "ADMIN"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidRole        = errors.New("invalid role")
)

// ParseRole accepts CLIENT and ADMIN in any case. DEVELOPER is accepted as an
// alias for ADMIN, the name the admin console used historically.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleClient):
		return RoleClient, nil
	case string(RoleAdmin), "DEVELOPER":
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// User is the authenticated actor. For clients, ID is the ownership key
// stamped on every record they create.
type User struct {
	ID          string `json:"id" yaml:"id"`
	Username    string `json:"username" yaml:"username"`
	Role        Role   `json:"role" yaml:"role"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsClient() bool {
	return u != nil && u.Role == RoleClient
}

// Credentials is what a login form submits.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
