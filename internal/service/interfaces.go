package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// AuthService owns signup, login, logout and password changes, and with
// them every point where a user's data key is created, unwrapped, rewrapped
// or handed to a session.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, userID int64, sessionID string, change models.PasswordChange) error
	EmailExists(ctx context.Context, email string) (bool, error)

	CreateToken(ctx context.Context, result models.AuthResult) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ValidateSession checks that the session the token points to is still
	// alive and belongs to the token's subject.
	ValidateSession(ctx context.Context, token models.Token) error
}

// KeyVaultService connects the data key vault to the credential record.
type KeyVaultService interface {
	// UnwrapDataKey opens user's wrapped data key with password. It returns
	// nil for a legacy user, a wrong password or a corrupted record.
	UnwrapDataKey(user models.User, password string) []byte

	// UnwrapDataKeyFromAuth loads the credential record of userID and
	// unwraps it. Only storage failures are returned as errors.
	UnwrapDataKeyFromAuth(ctx context.Context, userID int64, password string) ([]byte, error)

	// NewWrappedDataKey generates a data key and wraps it under password.
	NewWrappedDataKey(password string) ([]byte, string, error)

	// Backfill gives a legacy user a data key wrapped under the password the
	// user just proved. Concurrent backfills are last-write-wins.
	Backfill(ctx context.Context, userID int64, password string) ([]byte, error)

	// RewrapForPasswordChange wraps the same data key under newPassword.
	RewrapForPasswordChange(dataKey []byte, newPassword string) (string, error)
}

// KeyCustodian keeps a user's unwrapped data key on the session row for the
// lifetime of the session. None of its methods fail: storage problems are
// logged and the session simply has no key.
type KeyCustodian interface {
	Attach(ctx context.Context, sessionID string, dataKey []byte)
	Fetch(ctx context.Context, sessionID string) []byte
	Evict(ctx context.Context, sessionID string)
}

// FieldCryptoService seals and opens single PII column values.
type FieldCryptoService interface {
	EncryptField(plaintext string, dataKey []byte) (string, error)

	// DecryptPII resolves the session's data key and opens stored. Legacy
	// plaintext is returned unchanged. ok is false when the value is sealed
	// and cannot be opened in this session.
	DecryptPII(ctx context.Context, sessionID, stored string) (plaintext string, ok bool)

	// DecryptWithKey is DecryptPII with an already fetched key, which may be
	// nil.
	DecryptWithKey(ctx context.Context, dataKey []byte, stored string) (plaintext string, ok bool)

	IsEncrypted(stored string) bool

	// HashEmail normalizes email and returns its lookup hash.
	HashEmail(email string) string
}

// MigrationPolicy upgrades legacy plaintext columns to their sealed form as
// they are read.
type MigrationPolicy interface {
	// Read decrypts stored and, if it was legacy plaintext, writes the
	// sealed (and hashed) form back before returning the plaintext.
	Read(ctx context.Context, dataKey []byte, column store.PIIColumn, rowID int64, stored string) (plaintext string, ok bool)

	// UpgradeUser upgrades every legacy PII column of user and returns the
	// user with the new stored values.
	UpgradeUser(ctx context.Context, user models.User, dataKey []byte) models.User
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64, sessionID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, sessionID string, update models.ProfileUpdate) (models.Profile, error)
}

type ContactService interface {
	CreateContact(ctx context.Context, userID int64, sessionID string, contact models.NewContact) (models.ContactView, error)
	ListContacts(ctx context.Context, userID int64, sessionID string) ([]models.ContactView, error)
	SearchContactsByEmail(ctx context.Context, userID int64, sessionID, email string) ([]models.ContactView, error)
}

// SessionService is used by background workers.
type SessionService interface {
	// DeleteExpiredSessions removes expired sessions, and with them any
	// cached key material, returning how many were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
