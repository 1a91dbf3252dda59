package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/migrations"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// newTestSQLite opens an in-memory SQLite database migrated to version and
// returns it with its probed capabilities.
func newTestSQLite(t *testing.T, version int64) (*DB, Capabilities) {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	db := newSQLiteDB(conn, logger.Nop())
	require.NoError(t, migrations.MigrateTo(conn, db.Driver(), version))

	caps, err := ProbeCapabilities(context.Background(), db)
	require.NoError(t, err)

	return db, caps
}

// newTestPostgresMock returns a DB over sqlmock that behaves like the pgx
// dialect (dollar placeholders, SQLSTATE classification).
func newTestPostgresMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}
