// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// fieldPrefix marks a column value as sealed. Anything without it is a
// legacy plaintext value written before envelope encryption existed.
const fieldPrefix = "enc:v1:"

// FieldValue is a PII column value as found in storage: either [Plaintext]
// (legacy) or [Sealed] (encrypted under the owner's data key).
type FieldValue interface {
	fieldValue()
}

// Plaintext is a legacy, unencrypted column value.
type Plaintext string

// Sealed is the raw AEAD blob (nonce ‖ ciphertext ‖ tag) of an encrypted
// column value.
type Sealed []byte

func (Plaintext) fieldValue() {}
func (Sealed) fieldValue()    {}

// IsEncrypted reports whether stored carries the sealed-value marker. It is
// a purely structural test and never touches key material.
func IsEncrypted(stored string) bool {
	return strings.HasPrefix(stored, fieldPrefix)
}

// ParseFieldValue classifies a stored column value. A marked value whose
// payload is not valid base64 is reported as [ErrCorruptFieldValue] instead
// of being served as plaintext.
func ParseFieldValue(stored string) (FieldValue, error) {
	if !IsEncrypted(stored) {
		return Plaintext(stored), nil
	}

	blob, err := base64.StdEncoding.DecodeString(stored[len(fieldPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFieldValue, err)
	}

	return Sealed(blob), nil
}

// FormatFieldValue returns the storage form of v.
func FormatFieldValue(v FieldValue) string {
	switch v := v.(type) {
	case Plaintext:
		return string(v)
	case Sealed:
		return fieldPrefix + base64.StdEncoding.EncodeToString(v)
	default:
		return ""
	}
}

// EncryptField seals plaintext under dataKey and returns its storage form.
func EncryptField(plaintext string, dataKey []byte) (string, error) {
	blob, err := Seal(dataKey, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("encrypt field: %w", err)
	}
	return FormatFieldValue(Sealed(blob)), nil
}

// Open decrypts s with dataKey.
func (s Sealed) Open(dataKey []byte) (string, error) {
	plaintext, err := Open(dataKey, s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptFieldValue, err)
	}
	return string(plaintext), nil
}
