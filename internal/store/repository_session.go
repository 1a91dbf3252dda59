package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// sessionRepository is the SQL implementation of [SessionRepository].
// Timestamps are written in UTC so SQLite text comparison orders them.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
	caps   Capabilities
}

func NewSessionRepository(db *DB, caps Capabilities, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		caps:   caps,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession,
		session.ID, session.UserID, session.CreatedAt.UTC(), session.ExpiresAt.UTC())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").
			Str("session_id", session.ID).Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindSession returns the session if it exists and has not expired at now.
// DataKey is populated only when the schema has the data_key column.
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	columns := []string{"id", "user_id", "created_at", "expires_at"}
	if r.caps.SessionDataKey() {
		columns = append(columns, "data_key")
	}

	query, args, err := r.db.builder().
		Select(columns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Gt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	var dataKey sql.NullString
	dest := []any{&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt}
	if r.caps.SessionDataKey() {
		dest = append(dest, &dataKey)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").
			Str("session_id", sessionID).Msg("error scanning session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	session.DataKey = dataKey.String

	return session, nil
}

// SetSessionDataKey stores the stored form of a data key on the session.
func (r *sessionRepository) SetSessionDataKey(ctx context.Context, sessionID, storedKey string) error {
	if !r.caps.SessionDataKey() {
		return ErrColumnUnavailable
	}
	return r.exec(ctx, "*sessionRepository.SetSessionDataKey", sessionID, setSessionDataKey, storedKey, sessionID)
}

// ClearSessionDataKey removes any data key cached on the session.
func (r *sessionRepository) ClearSessionDataKey(ctx context.Context, sessionID string) error {
	if !r.caps.SessionDataKey() {
		return ErrColumnUnavailable
	}
	return r.exec(ctx, "*sessionRepository.ClearSessionDataKey", sessionID, clearSessionDataKey, sessionID)
}

// DeleteSession removes the session row together with any cached key.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.exec(ctx, "*sessionRepository.DeleteSession", sessionID, deleteSession, sessionID)
}

// DeleteExpiredSessions removes every session that expired at or before now
// and returns how many were removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions, now.UTC())
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.RowsAffected()
}

func (r *sessionRepository) exec(ctx context.Context, funcName, sessionID, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("session_id", sessionID).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
