// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const sessionKeyInfo = "go-pii-keeper/session-data-key"

// SessionKeySealer encodes data keys for the session table. With a server
// secret configured the key is sealed under an HKDF-derived key, so a raw
// database dump does not hand out live data keys. Without a secret the key
// is stored base64-encoded.
type SessionKeySealer struct {
	key []byte
}

// NewSessionKeySealer derives the sealing key from secret. An empty secret
// returns a pass-through sealer.
func NewSessionKeySealer(secret string) (*SessionKeySealer, error) {
	if secret == "" {
		return &SessionKeySealer{}, nil
	}

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive session sealing key: %w", err)
	}

	return &SessionKeySealer{key: key}, nil
}

// Enabled reports whether session keys are sealed at rest.
func (s *SessionKeySealer) Enabled() bool {
	return len(s.key) != 0
}

// SealKey returns the storage form of dataKey.
func (s *SessionKeySealer) SealKey(dataKey []byte) (string, error) {
	if len(dataKey) != KeySize {
		return "", ErrInvalidKeySize
	}

	if !s.Enabled() {
		return base64.StdEncoding.EncodeToString(dataKey), nil
	}

	blob, err := Seal(s.key, dataKey)
	if err != nil {
		return "", fmt.Errorf("seal session key: %w", err)
	}
	return FormatFieldValue(Sealed(blob)), nil
}

// OpenKey reverses [SessionKeySealer.SealKey]. Unsealed values are accepted
// even when sealing is enabled, so rows written before the secret was
// configured keep working until they expire.
func (s *SessionKeySealer) OpenKey(stored string) ([]byte, error) {
	value, err := ParseFieldValue(stored)
	if err != nil {
		return nil, err
	}

	var dataKey []byte
	switch v := value.(type) {
	case Plaintext:
		dataKey, err = base64.StdEncoding.DecodeString(string(v))
		if err != nil {
			return nil, fmt.Errorf("decode session key: %w", err)
		}
	case Sealed:
		if !s.Enabled() {
			return nil, ErrSessionSecretMissing
		}
		dataKey, err = Open(s.key, v)
		if err != nil {
			return nil, fmt.Errorf("open session key: %w", err)
		}
	}

	if len(dataKey) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return dataKey, nil
}
