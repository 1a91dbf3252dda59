// Package http implements the REST API of go-pii-keeper.
//
// Handlers translate JSON requests into service calls and map service errors
// to status codes through errorStatusMap. PII that cannot be decrypted in the
// caller's session is rendered as JSON null; per-field cryptographic failures
// never surface as 5xx responses.
package http
