// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the per-user KDF salt (128 bits).
	SaltSize = 16

	// KeySize is the length of every symmetric key handled here: data keys,
	// wrapping keys and the session sealing key (256 bits).
	KeySize = 32
)

// KDFParams holds the Argon2id cost parameters used to turn a password into
// a wrapping key. Memory is expressed in KiB.
type KDFParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKDFParams returns the OWASP (2024) Argon2id profile:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

// withDefaults fills zero fields from [DefaultKDFParams]; argon2 panics on a
// zero time or thread count.
func (p KDFParams) withDefaults() KDFParams {
	def := DefaultKDFParams()
	if p.Time == 0 {
		p.Time = def.Time
	}
	if p.Memory == 0 {
		p.Memory = def.Memory
	}
	if p.Threads == 0 {
		p.Threads = def.Threads
	}
	return p
}

// DeriveWrappingKey derives a 256-bit wrapping key from password and salt
// with Argon2id. The function is deterministic: a wrong password yields a
// different key, which then fails to open the sealed data key.
func DeriveWrappingKey(password string, salt []byte, params KDFParams) []byte {
	params = params.withDefaults()
	return argon2.IDKey(
		[]byte(password),
		salt,
		params.Time,
		params.Memory,
		params.Threads,
		KeySize,
	)
}

// GenerateSalt reads [SaltSize] bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// EncodeSalt returns the storage form of a salt (standard base64).
func EncodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

// DecodeSalt is the inverse of [EncodeSalt].
func DecodeSalt(encoded string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	return salt, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}
