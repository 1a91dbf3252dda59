package models

import "time"

// Session is a server-side login session. DataKey holds the stored form of
// the user's unwrapped data key for the session lifetime; it is empty when
// no key was attached.
type Session struct {
	ID        string
	UserID    int64
	DataKey   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
