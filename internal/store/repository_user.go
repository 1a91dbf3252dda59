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

// userRepository is the SQL implementation of [UserRepository].
// Optional envelope columns are only referenced when the probed
// [Capabilities] say they exist.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	caps   Capabilities
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection.
func NewUserRepository(db *DB, caps Capabilities, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		caps:   caps,
		logger: logger,
	}
}

func (r *userRepository) columns() []string {
	cols := []string{"user_id", "email", "password_hash", "display_name", "phone", "monthly_budget", "created_at"}
	if r.caps.UserEmailHash() {
		cols = append(cols, "email_hash")
	}
	if r.caps.UserWrappedDataKey() {
		cols = append(cols, "wrapped_data_key")
	}
	return cols
}

func (r *userRepository) scan(row sq.RowScanner) (models.User, error) {
	var user models.User
	var emailHash, wrappedDataKey sql.NullString

	dest := []any{&user.UserID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Phone, &user.MonthlyBudget, &user.CreatedAt}
	if r.caps.UserEmailHash() {
		dest = append(dest, &emailHash)
	}
	if r.caps.UserWrappedDataKey() {
		dest = append(dest, &wrappedDataKey)
	}

	if err := row.Scan(dest...); err != nil {
		return models.User{}, err
	}
	user.EmailHash = emailHash.String
	user.WrappedDataKey = wrappedDataKey.String

	return user, nil
}

// CreateUser inserts a user and returns it with UserID and CreatedAt set.
// EmailHash and WrappedDataKey are written only when their columns exist and
// the values are non-empty.
//
// Error handling:
//   - unique violation → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	values := map[string]any{
		"email":          user.Email,
		"password_hash":  user.PasswordHash,
		"display_name":   user.DisplayName,
		"phone":          user.Phone,
		"monthly_budget": user.MonthlyBudget,
		"created_at":     user.CreatedAt,
	}
	if r.caps.UserEmailHash() && user.EmailHash != "" {
		values["email_hash"] = user.EmailHash
	}
	if r.caps.UserWrappedDataKey() && user.WrappedDataKey != "" {
		values["wrapped_data_key"] = user.WrappedDataKey
	}

	query, args, err := r.db.builder().
		Insert(usersTable).
		SetMap(values).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if !r.caps.UserEmailHash() {
		user.EmailHash = ""
	}
	if !r.caps.UserWrappedDataKey() {
		user.WrappedDataKey = ""
	}
	return user, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

// FindUserByEmailHash retrieves the user whose email lookup hash matches.
func (r *userRepository) FindUserByEmailHash(ctx context.Context, emailHash string) (models.User, error) {
	if !r.caps.UserEmailHash() {
		return models.User{}, ErrColumnUnavailable
	}
	return r.findOne(ctx, "*userRepository.FindUserByEmailHash", sq.Eq{"email_hash": emailHash})
}

// FindUsersByLegacyEmail returns every user whose email column still holds
// the address in plaintext, compared case-insensitively. The legacy UNIQUE
// constraint is case-sensitive, so several rows can match. An empty slice
// means no match.
func (r *userRepository) FindUsersByLegacyEmail(ctx context.Context, normalizedEmail string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(r.columns()...).
		From(usersTable).
		Where(sq.Expr("LOWER(TRIM(email)) = ?", normalizedEmail)).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByLegacyEmail").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsersByLegacyEmail").Msg("error querying users")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := r.scan(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsersByLegacyEmail").Msg("error scanning user")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(r.columns()...).
		From(usersTable).
		Where(where).
		OrderBy("user_id").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateWrappedDataKey stores a wrapped data key for the user. Concurrent
// writers are last-write-wins.
func (r *userRepository) UpdateWrappedDataKey(ctx context.Context, userID int64, wrappedDataKey string) error {
	if !r.caps.UserWrappedDataKey() {
		return ErrColumnUnavailable
	}
	return r.update(ctx, "*userRepository.UpdateWrappedDataKey", userID, map[string]any{
		"wrapped_data_key": wrappedDataKey,
	})
}

// UpdateCredentials replaces the password hash and, when present, the
// wrapped data key in a single statement so both always match.
func (r *userRepository) UpdateCredentials(ctx context.Context, userID int64, passwordHash, wrappedDataKey string) error {
	values := map[string]any{"password_hash": passwordHash}
	if wrappedDataKey != "" {
		if !r.caps.UserWrappedDataKey() {
			return ErrColumnUnavailable
		}
		values["wrapped_data_key"] = wrappedDataKey
	}
	return r.update(ctx, "*userRepository.UpdateCredentials", userID, values)
}

// UpdateUserFields writes the given PII columns. Only email, email_hash,
// display_name, phone and monthly_budget are accepted.
func (r *userRepository) UpdateUserFields(ctx context.Context, userID int64, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	for column := range values {
		if _, ok := updatableUserColumns[column]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
		}
	}
	if _, ok := values["email_hash"]; ok && !r.caps.UserEmailHash() {
		return ErrColumnUnavailable
	}
	return r.update(ctx, "*userRepository.UpdateUserFields", userID, values)
}

func (r *userRepository) update(ctx context.Context, funcName string, userID int64, values map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(usersTable).
		SetMap(values).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error updating user")
		if r.db.classify(err) == UniqueViolation {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
