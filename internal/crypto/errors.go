// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the primitives of this package. Callers match
// them with [errors.Is].
var (
	// ErrInvalidKeySize is returned when a symmetric key is not exactly
	// [KeySize] bytes long.
	ErrInvalidKeySize = errors.New("crypto: key must be 32 bytes")

	// ErrCiphertextTooShort is returned when a sealed blob cannot even hold
	// the nonce and the authentication tag.
	ErrCiphertextTooShort = errors.New("crypto: ciphertext too short")

	// ErrMalformedWrappedKey is returned by [ParseWrappedKey] when the stored
	// credential value is not in the `salt:sealed` form.
	ErrMalformedWrappedKey = errors.New("crypto: malformed wrapped data key")

	// ErrCorruptFieldValue is returned when a value carries the encrypted
	// field marker but its payload cannot be decoded or opened.
	ErrCorruptFieldValue = errors.New("crypto: corrupt encrypted field value")

	// ErrSessionSecretMissing is returned when a session row holds a sealed
	// data key but the server has no session secret configured to open it.
	ErrSessionSecretMissing = errors.New("crypto: session key secret is not configured")
)

// OpenFailedError is returned by [Open] when authenticated decryption fails:
// wrong key, tampered ciphertext or truncated tag. The AEAD error is kept in
// Inner.
type OpenFailedError struct {
	Inner error
}

func (e *OpenFailedError) Error() string {
	return fmt.Sprintf("crypto: open failed: %v", e.Inner)
}

func (e *OpenFailedError) Unwrap() error {
	return e.Inner
}
