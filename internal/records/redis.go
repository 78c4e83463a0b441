package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

const (
	projectsKey         = "zb:projects"         // all projects, newest first
	roomsKey            = "zb:rooms"            // all rooms, newest first
	clientProjectPrefix = "zb:client:projects:" // zb:client:projects:{client_id}
	clientRoomPrefix    = "zb:client:rooms:"    // zb:client:rooms:{client_id}
)

// RedisStore keeps records as JSON in redis lists. Each append pushes onto
// the global list and the owner's list in one MULTI/EXEC.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) AppendProject(ctx context.Context, rec projdomain.ProjectRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal project record: %w", err)
	}
	return s.push(ctx, projectsKey, clientProjectPrefix+rec.OwnerID(), data)
}

func (s *RedisStore) AppendRoom(ctx context.Context, rec roomdomain.RoomRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal room record: %w", err)
	}
	return s.push(ctx, roomsKey, clientRoomPrefix+rec.OwnerID(), data)
}

func (s *RedisStore) push(ctx context.Context, globalKey, clientKey string, data []byte) error {
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, globalKey, data)
	pipe.LPush(ctx, clientKey, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

func (s *RedisStore) ProjectsByClient(ctx context.Context, clientID string) ([]projdomain.ProjectRecord, error) {
	raw, err := s.client.LRange(ctx, clientProjectPrefix+clientID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for client: %w", err)
	}

	out := make([]projdomain.ProjectRecord, 0, len(raw))
	for _, item := range raw {
		var rec projdomain.ProjectRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RedisStore) RoomsByClient(ctx context.Context, clientID string) ([]roomdomain.RoomRecord, error) {
	raw, err := s.client.LRange(ctx, clientRoomPrefix+clientID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for client: %w", err)
	}

	out := make([]roomdomain.RoomRecord, 0, len(raw))
	for _, item := range raw {
		var rec roomdomain.RoomRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal room record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}
