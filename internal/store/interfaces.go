package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pii-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. PII columns are read and written in
// their storage form; encryption happens in the service layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmailHash(ctx context.Context, emailHash string) (models.User, error)
	FindUsersByLegacyEmail(ctx context.Context, normalizedEmail string) ([]models.User, error)
	UpdateWrappedDataKey(ctx context.Context, userID int64, wrappedDataKey string) error
	UpdateCredentials(ctx context.Context, userID int64, passwordHash, wrappedDataKey string) error
	UpdateUserFields(ctx context.Context, userID int64, values map[string]any) error
}

// SessionRepository persists login sessions and the data key cached on them.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string, now time.Time) (models.Session, error)
	SetSessionDataKey(ctx context.Context, sessionID, storedKey string) error
	ClearSessionDataKey(ctx context.Context, sessionID string) error
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ContactRepository persists contact records owned by users.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, userID int64) ([]models.Contact, error)
	FindContactsByEmailHash(ctx context.Context, userID int64, emailHash string) ([]models.Contact, error)
}

// FieldUpgrader rewrites a single legacy PII value in place.
type FieldUpgrader interface {
	// UpgradeField replaces column.Column of the row rowID with sealed (and
	// column.HashColumn with hash, when both are set) only if the column still
	// holds legacy. It reports whether a row was changed.
	UpgradeField(ctx context.Context, column PIIColumn, rowID int64, legacy, sealed, hash string) (bool, error)
}
