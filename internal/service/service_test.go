package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pii-keeper/internal/config"
	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/migrations"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testPassword = "Tr0ub4dor&3"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "test-sign-key",
			TokenIssuer:      "go-pii-keeper-test",
			TokenDuration:    time.Hour,
			LookupHashKey:    "test-lookup-key",
			SessionKeySecret: "test-session-secret",
		},
		KDF: config.KDF{Time: 1, Memory: 1024, Threads: 1},
	}
}

// testStack is the full service graph over an in-memory SQLite database.
type testStack struct {
	db       *store.DB
	storages *store.Storages
	services *Services
}

// newTestStack migrates to version, then applies schemaEdits before the
// capability probe to model a partially rolled out schema.
func newTestStack(t *testing.T, version int64, schemaEdits ...string) *testStack {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, config.DB{DSN: ":memory:", Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.MigrateTo(db.DB, db.Driver(), version))
	for _, stmt := range schemaEdits {
		_, err = db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	caps, err := store.ProbeCapabilities(ctx, db)
	require.NoError(t, err)

	storages := store.NewStorages(db, caps)
	services, err := NewServices(storages, testConfig(), logger.Nop())
	require.NoError(t, err)
	services.AuthService.(*authService).bcryptCost = bcrypt.MinCost

	return &testStack{db: db, storages: storages, services: services}
}

// seedLegacyUser inserts a user the way the pre-envelope schema stored it:
// plaintext PII and no wrapped data key.
func (s *testStack) seedLegacyUser(t *testing.T, email, password, displayName string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	var userID int64
	err = s.db.QueryRowContext(context.Background(),
		"INSERT INTO users (email, password_hash, display_name, phone) VALUES ($1, $2, $3, $4) RETURNING user_id",
		email, string(hash), displayName, "+1 555 0100",
	).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func (s *testStack) user(t *testing.T, userID int64) models.User {
	t.Helper()
	user, err := s.storages.UserRepository.FindUserByID(context.Background(), userID)
	require.NoError(t, err)
	return user
}

func (s *testStack) countSessions(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM sessions").Scan(&n))
	return n
}

func (s *testStack) register(t *testing.T, email string) models.AuthResult {
	t.Helper()
	result, err := s.services.AuthService.Register(context.Background(), models.Credentials{
		Email:       email,
		Password:    testPassword,
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	return result
}

const dropSessionDataKey = "ALTER TABLE sessions DROP COLUMN data_key"

func (s *testStack) storedUserColumn(t *testing.T, userID int64, column string) string {
	t.Helper()
	var value string
	require.NoError(t, s.db.QueryRowContext(context.Background(),
		"SELECT "+column+" FROM users WHERE user_id = $1", userID).Scan(&value))
	return value
}

func mustSealer(t *testing.T, secret string) *crypto.SessionKeySealer {
	t.Helper()
	sealer, err := crypto.NewSessionKeySealer(secret)
	require.NoError(t, err)
	return sealer
}
