package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/migrations"
	"github.com/MKhiriev/go-pii-keeper/models"
)

func newTestUser(email string) models.User {
	return models.User{
		Email:          "enc:v1:" + email,
		EmailHash:      "hash-" + email,
		PasswordHash:   "$2a$10$hash",
		DisplayName:    "enc:v1:name",
		WrappedDataKey: "c2FsdA==:a2V5",
	}
}

// ── SQLite, full schema ───────────────────────────────────────────────────────

func TestUserRepository_CreateAndFind(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionEnvelopeEncryption)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, newTestUser("alice"))
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	byHash, err := repo.FindUserByEmailHash(ctx, "hash-alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, byHash.UserID)
	assert.Equal(t, "enc:v1:alice", byHash.Email)
	assert.Equal(t, "c2FsdA==:a2V5", byHash.WrappedDataKey)
	assert.Equal(t, "$2a$10$hash", byHash.PasswordHash)

	byID, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, byHash.EmailHash, byID.EmailHash)

	_, err = repo.FindUserByEmailHash(ctx, "hash-nobody")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_DuplicateHash(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionEnvelopeEncryption)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, newTestUser("alice"))
	require.NoError(t, err)

	dup := newTestUser("alice")
	dup.Email = "enc:v1:other-ciphertext"
	_, err = repo.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_FindUsersByLegacyEmail(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionEnvelopeEncryption)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Email: " Bob@Example.com ", PasswordHash: "h"})
	require.NoError(t, err)

	found, err := repo.FindUsersByLegacyEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.UserID, found[0].UserID)
	assert.Empty(t, found[0].EmailHash)
	assert.Empty(t, found[0].WrappedDataKey)

	found, err = repo.FindUsersByLegacyEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestUserRepository_FindUsersByLegacyEmail_CaseVariants(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionLegacySchema)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	upper, err := repo.CreateUser(ctx, models.User{Email: "Erin@example.com", PasswordHash: "h1"})
	require.NoError(t, err)
	lower, err := repo.CreateUser(ctx, models.User{Email: "erin@example.com", PasswordHash: "h2"})
	require.NoError(t, err)

	found, err := repo.FindUsersByLegacyEmail(ctx, "erin@example.com")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, upper.UserID, found[0].UserID)
	assert.Equal(t, lower.UserID, found[1].UserID)
}

func TestUserRepository_Updates(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionEnvelopeEncryption)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Email: "dan@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateWrappedDataKey(ctx, created.UserID, "s:w1"))
	require.NoError(t, repo.UpdateCredentials(ctx, created.UserID, "h2", "s:w2"))
	require.NoError(t, repo.UpdateUserFields(ctx, created.UserID, map[string]any{
		"phone":      "enc:v1:phone",
		"email_hash": "hash-dan",
	}))

	found, err := repo.FindUserByEmailHash(ctx, "hash-dan")
	require.NoError(t, err)
	assert.Equal(t, "h2", found.PasswordHash)
	assert.Equal(t, "s:w2", found.WrappedDataKey)
	assert.Equal(t, "enc:v1:phone", found.Phone)

	assert.ErrorIs(t, repo.UpdateWrappedDataKey(ctx, 9999, "s:w"), ErrNoUserWasFound)
	assert.ErrorIs(t, repo.UpdateUserFields(ctx, created.UserID, map[string]any{"password_hash": "x"}), ErrUnknownColumn)
	assert.NoError(t, repo.UpdateUserFields(ctx, created.UserID, nil))
}

// ── SQLite, legacy schema ─────────────────────────────────────────────────────

func TestUserRepository_LegacySchema(t *testing.T) {
	db, caps := newTestSQLite(t, migrations.VersionLegacySchema)
	repo := NewUserRepository(db, caps, logger.Nop())
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, newTestUser("erin"))
	require.NoError(t, err)
	assert.Empty(t, created.EmailHash, "hash column is absent")
	assert.Empty(t, created.WrappedDataKey, "wrapped key column is absent")

	found, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "enc:v1:erin", found.Email)

	_, err = repo.FindUserByEmailHash(ctx, "hash-erin")
	assert.ErrorIs(t, err, ErrColumnUnavailable)
	assert.ErrorIs(t, repo.UpdateWrappedDataKey(ctx, created.UserID, "s:w"), ErrColumnUnavailable)
	assert.ErrorIs(t, repo.UpdateCredentials(ctx, created.UserID, "h", "s:w"), ErrColumnUnavailable)
	assert.NoError(t, repo.UpdateCredentials(ctx, created.UserID, "h", ""))

	_, err = repo.CreateUser(ctx, newTestUser("erin"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists, "legacy email column is unique")
}

// ── PostgreSQL dialect (sqlmock) ──────────────────────────────────────────────

func TestUserRepository_Postgres_CreateUniqueViolation(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewUserRepository(db, AllCapabilities(), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), newTestUser("alice"))
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_Postgres_CreateUnexpectedError(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewUserRepository(db, AllCapabilities(), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), newTestUser("alice"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestUserRepository_Postgres_FindUsesDollarPlaceholders(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewUserRepository(db, AllCapabilities(), logger.Nop())

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, email, password_hash, display_name, phone, monthly_budget, created_at, email_hash, wrapped_data_key FROM users WHERE email_hash = $1 ORDER BY user_id LIMIT 1")).
		WithArgs("hash-alice").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "email", "password_hash", "display_name", "phone", "monthly_budget", "created_at", "email_hash", "wrapped_data_key",
		}).AddRow(7, "enc:v1:x", "h", "", "", "", now, "hash-alice", nil))

	found, err := repo.FindUserByEmailHash(context.Background(), "hash-alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.Empty(t, found.WrappedDataKey, "NULL wrapped key scans as empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Postgres_UpdateError(t *testing.T) {
	db, mock := newTestPostgresMock(t)
	repo := NewUserRepository(db, AllCapabilities(), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET wrapped_data_key = $1 WHERE user_id = $2")).
		WithArgs("s:w", int64(1)).
		WillReturnError(errors.New("timeout"))

	err := repo.UpdateWrappedDataKey(context.Background(), 1, "s:w")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
