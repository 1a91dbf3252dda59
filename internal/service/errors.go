package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers unknown email, wrong password and an
	// unopenable wrapped data key alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken = errors.New("email is already registered")

	// ErrDataKeyUnavailable is returned by write paths that must encrypt but
	// find no data key cached on the session. The user has to log in again.
	ErrDataKeyUnavailable = errors.New("data key is not available in this session")

	ErrSessionInvalid = errors.New("session is expired or invalid")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrSearchUnavailable is returned when the schema has no lookup-hash
	// column for the searched field.
	ErrSearchUnavailable = errors.New("search by email is not available")
)

// invalidInput keeps the validator's reason next to ErrInvalidDataProvided.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
