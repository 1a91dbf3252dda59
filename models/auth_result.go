package models

// AuthResult is what a successful register or login hands back to the
// transport layer: the authenticated user row and the new session.
type AuthResult struct {
	User    User
	Session Session
}
