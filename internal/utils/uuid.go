package utils

import "github.com/google/uuid"

// SessionIDs mints session identifiers. UUIDv7 keeps session rows roughly
// in creation order; a v4 is used if the clock source fails.
type SessionIDs struct{}

func NewSessionIDs() SessionIDs {
	return SessionIDs{}
}

func (SessionIDs) Next() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsUUID reports whether s parses as a UUID of any version.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
