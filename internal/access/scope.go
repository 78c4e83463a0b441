// Package access resolves which client's records a requester may see.
package access

import (
	"context"
	"fmt"
	"strings"

	authdomain "github.com/zerobuild-ai/zerobuild-backend/internal/auth/domain"
	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/records"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
	"github.com/zerobuild-ai/zerobuild-backend/internal/validation"
)

// LookupResult is the records owned by one client, most recent first.
// Both slices are non-nil.
type LookupResult struct {
	ClientID string                     `json:"client_id"`
	Projects []projdomain.ProjectRecord `json:"projects"`
	Rooms    []roomdomain.RoomRecord    `json:"rooms"`
}

type Scope struct {
	store records.Store
}

func NewScope(store records.Store) *Scope {
	return &Scope{store: store}
}

// Query returns the records visible to requester. Clients always see their
// own records whatever target they pass. Admins must name a target client.
func (s *Scope) Query(ctx context.Context, requester *authdomain.User, targetClientID string) (*LookupResult, error) {
	if requester == nil {
		return nil, authdomain.ErrUnauthenticated
	}

	var clientID string
	switch {
	case requester.IsClient():
		clientID = requester.ID
	case requester.IsAdmin():
		clientID = strings.TrimSpace(targetClientID)
		if clientID == "" {
			return nil, validation.Fail("client_id", validation.CodeRequired)
		}
	default:
		return nil, authdomain.ErrInvalidRole
	}

	projects, err := s.store.ProjectsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("lookup projects: %w", err)
	}
	rooms, err := s.store.RoomsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("lookup rooms: %w", err)
	}

	if projects == nil {
		projects = []projdomain.ProjectRecord{}
	}
	if rooms == nil {
		rooms = []roomdomain.RoomRecord{}
	}
	return &LookupResult{ClientID: clientID, Projects: projects, Rooms: rooms}, nil
}
