package records

import (
	"context"
	"sync"

	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

// MemoryStore keeps records in process memory. Contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	projects []projdomain.ProjectRecord
	rooms    []roomdomain.RoomRecord
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AppendProject(_ context.Context, rec projdomain.ProjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]projdomain.ProjectRecord{rec.Clone()}, s.projects...)
	return nil
}

func (s *MemoryStore) AppendRoom(_ context.Context, rec roomdomain.RoomRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append([]roomdomain.RoomRecord{rec.Clone()}, s.rooms...)
	return nil
}

func (s *MemoryStore) ProjectsByClient(_ context.Context, clientID string) ([]projdomain.ProjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ownedBy(s.projects, clientID), nil
}

func (s *MemoryStore) RoomsByClient(_ context.Context, clientID string) ([]roomdomain.RoomRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ownedBy(s.rooms, clientID), nil
}

type ownedRecord[R any] interface {
	OwnerID() string
	Clone() R
}

// ownedBy copies out the records owned by clientID, keeping their order.
func ownedBy[R ownedRecord[R]](recs []R, clientID string) []R {
	out := []R{}
	for _, r := range recs {
		if r.OwnerID() == clientID {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Len returns the number of stored projects and rooms.
func (s *MemoryStore) Len() (projects, rooms int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects), len(s.rooms)
}
