// Package utils holds small helpers shared by the transport and service
// layers: request context values, JSON responses, JWTs, keyed hashes and
// session identifiers.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

const sessionCtxKey = contextKey("session")

// SessionRef identifies the authenticated caller of a request. It carries
// ids only; the session's data key stays on the session row.
type SessionRef struct {
	UserID    int64
	SessionID string
}

// WithSession returns a copy of ctx carrying the caller's user and session id.
func WithSession(ctx context.Context, userID int64, sessionID string) context.Context {
	return context.WithValue(ctx, sessionCtxKey, SessionRef{UserID: userID, SessionID: sessionID})
}

// SessionFromContext returns the caller set by WithSession. A reference
// without a session id is reported as missing.
func SessionFromContext(ctx context.Context) (SessionRef, bool) {
	ref, ok := ctx.Value(sessionCtxKey).(SessionRef)
	return ref, ok && ref.SessionID != ""
}
