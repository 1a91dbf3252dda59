package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// lookup hash (or legacy email) already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned for missing or expired sessions.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrContactNotSaved is returned when an insert produced no row.
	ErrContactNotSaved = errors.New("contact was not saved")

	// ErrColumnUnavailable is returned when an operation needs an optional
	// column the schema does not have.
	ErrColumnUnavailable = errors.New("column is not available in the current schema")

	// ErrUnknownColumn is returned when a caller names a column that is not
	// writable through the repository.
	ErrUnknownColumn = errors.New("unknown column")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
