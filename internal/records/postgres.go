package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	projdomain "github.com/zerobuild-ai/zerobuild-backend/internal/projects/domain"
	roomdomain "github.com/zerobuild-ai/zerobuild-backend/internal/rooms/domain"
)

// Schema creates the append-only record tables. seq orders records; the
// record id is informational only.
const Schema = `
CREATE TABLE IF NOT EXISTS project_records (
	seq        BIGSERIAL PRIMARY KEY,
	record_id  TEXT NOT NULL,
	client_id  TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_records_client ON project_records (client_id, seq DESC);

CREATE TABLE IF NOT EXISTS room_records (
	seq        BIGSERIAL PRIMARY KEY,
	record_id  TEXT NOT NULL,
	client_id  TEXT NOT NULL,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_room_records_client ON room_records (client_id, seq DESC);
`

// PostgresStore keeps records as JSONB rows.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the tables when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create record schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendProject(ctx context.Context, rec projdomain.ProjectRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal project record: %w", err)
	}

	query := `
		INSERT INTO project_records (record_id, client_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, rec.ID, rec.OwnerID(), payload, rec.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert project record: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendRoom(ctx context.Context, rec roomdomain.RoomRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal room record: %w", err)
	}

	query := `
		INSERT INTO room_records (record_id, client_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, rec.ID, rec.OwnerID(), payload, rec.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert room record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ProjectsByClient(ctx context.Context, clientID string) ([]projdomain.ProjectRecord, error) {
	query := `
		SELECT payload
		FROM project_records
		WHERE client_id = $1
		ORDER BY seq DESC
	`
	out := []projdomain.ProjectRecord{}
	err := s.scanPayloads(ctx, query, clientID, func(b []byte) error {
		var rec projdomain.ProjectRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return fmt.Errorf("failed to unmarshal project record: %w", err)
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) RoomsByClient(ctx context.Context, clientID string) ([]roomdomain.RoomRecord, error) {
	query := `
		SELECT payload
		FROM room_records
		WHERE client_id = $1
		ORDER BY seq DESC
	`
	out := []roomdomain.RoomRecord{}
	err := s.scanPayloads(ctx, query, clientID, func(b []byte) error {
		var rec roomdomain.RoomRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return fmt.Errorf("failed to unmarshal room record: %w", err)
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) scanPayloads(ctx context.Context, query, clientID string, each func([]byte) error) error {
	rows, err := s.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("failed to scan record: %w", err)
		}
		if err := each(payload); err != nil {
			return err
		}
	}
	return rows.Err()
}
