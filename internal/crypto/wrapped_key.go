// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const wrappedKeySeparator = ":"

// WrappedKey is the credential-record form of a user's data key: the KDF salt
// and the data key sealed under the derived wrapping key. Its storage form is
// "base64(salt):base64(sealed)"; both halves use standard base64, which never
// contains the separator.
type WrappedKey struct {
	Salt   []byte
	Sealed []byte
}

// ParseWrappedKey decodes the storage form produced by [WrappedKey.String].
func ParseWrappedKey(stored string) (WrappedKey, error) {
	saltPart, sealedPart, ok := strings.Cut(stored, wrappedKeySeparator)
	if !ok || saltPart == "" || sealedPart == "" || strings.Contains(sealedPart, wrappedKeySeparator) {
		return WrappedKey{}, ErrMalformedWrappedKey
	}

	salt, err := DecodeSalt(saltPart)
	if err != nil {
		return WrappedKey{}, fmt.Errorf("%w: %w", ErrMalformedWrappedKey, err)
	}

	sealed, err := base64.StdEncoding.DecodeString(sealedPart)
	if err != nil {
		return WrappedKey{}, fmt.Errorf("%w: decode sealed key: %w", ErrMalformedWrappedKey, err)
	}

	return WrappedKey{Salt: salt, Sealed: sealed}, nil
}

// String returns the storage form. A zero WrappedKey renders as "".
func (w WrappedKey) String() string {
	if w.IsZero() {
		return ""
	}
	return EncodeSalt(w.Salt) + wrappedKeySeparator + base64.StdEncoding.EncodeToString(w.Sealed)
}

// IsZero reports whether w carries no key material (legacy credential).
func (w WrappedKey) IsZero() bool {
	return len(w.Salt) == 0 && len(w.Sealed) == 0
}
