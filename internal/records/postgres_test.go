package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPostgresStore(db), mock, db
}

func TestPostgresStore_AppendProject(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	rec := project("PRJ-1001", "c1")
	mock.ExpectExec(`INSERT INTO project_records`).
		WithArgs("PRJ-1001", "c1", sqlmock.AnyArg(), rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.AppendProject(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendRoomError(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO room_records`).
		WillReturnError(errors.New("connection reset"))

	err := s.AppendRoom(context.Background(), room("ROOM-1001", "c1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert room record")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ProjectsByClient(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	newer, _ := json.Marshal(project("PRJ-1002", "c1"))
	older, _ := json.Marshal(project("PRJ-1001", "c1"))

	mock.ExpectQuery(`SELECT payload\s+FROM project_records\s+WHERE client_id = \$1\s+ORDER BY seq DESC`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(newer).AddRow(older))

	got, err := s.ProjectsByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "PRJ-1002", got[0].ID)
	assert.Equal(t, "PRJ-1001", got[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RoomsByClientEmpty(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT payload\s+FROM room_records`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	got, err := s.RoomsByClient(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CorruptPayload(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT payload`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte("{not json")))

	_, err := s.ProjectsByClient(context.Background(), "c1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_EnsureSchema(t *testing.T) {
	s, mock, db := setupPostgresStore(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS project_records`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
