package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// userFinder resolves a user by email over both storage forms: the lookup
// hash of upgraded rows and the plaintext email of legacy rows.
type userFinder struct {
	userRepository store.UserRepository
	fieldCrypto    FieldCryptoService
	caps           store.Capabilities
}

// byHash returns the upgraded user holding the lookup hash of
// normalizedEmail, if any.
func (f userFinder) byHash(ctx context.Context, normalizedEmail string) (models.User, bool, error) {
	if !f.caps.UserEmailHash() {
		return models.User{}, false, nil
	}
	user, err := f.userRepository.FindUserByEmailHash(ctx, f.fieldCrypto.HashEmail(normalizedEmail))
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, false, nil
	case err != nil:
		return models.User{}, false, err
	}
	return user, true, nil
}

// legacy returns the legacy users whose plaintext email normalizes to
// normalizedEmail. The legacy UNIQUE constraint is case-sensitive, so there
// may be several; rows storing rawEmail exactly come first.
func (f userFinder) legacy(ctx context.Context, normalizedEmail, rawEmail string) ([]models.User, error) {
	users, err := f.userRepository.FindUsersByLegacyEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, err
	}

	rawEmail = strings.TrimSpace(rawEmail)
	exact := func(u models.User) bool { return strings.TrimSpace(u.Email) == rawEmail }
	slices.SortStableFunc(users, func(a, b models.User) int {
		switch {
		case exact(a) == exact(b):
			return 0
		case exact(a):
			return -1
		}
		return 1
	})
	return users, nil
}

// emailTaken reports whether normalizedEmail belongs to a user other than
// exceptUserID.
func (f userFinder) emailTaken(ctx context.Context, normalizedEmail string, exceptUserID int64) (bool, error) {
	user, found, err := f.byHash(ctx, normalizedEmail)
	if err != nil {
		return false, err
	}
	if found && user.UserID != exceptUserID {
		return true, nil
	}

	users, err := f.legacy(ctx, normalizedEmail, normalizedEmail)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(users, func(u models.User) bool { return u.UserID != exceptUserID }), nil
}
