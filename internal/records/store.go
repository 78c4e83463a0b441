// Package records is the append-only store of finalized project and room
// records. Collections are ordered most-recent-first and nothing is ever
// updated or deleted.
package records

import (
	"context"

	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

// Store persists finalized records. Lookups for an unknown client return an
// empty slice, never an error. Record ids may collide, so nothing keys on them.
type Store interface {
	AppendProject(ctx context.Context, rec projdomain.ProjectRecord) error
	AppendRoom(ctx context.Context, rec roomdomain.RoomRecord) error
	ProjectsByClient(ctx context.Context, clientID string) ([]projdomain.ProjectRecord, error)
	RoomsByClient(ctx context.Context, clientID string) ([]roomdomain.RoomRecord, error)
}
