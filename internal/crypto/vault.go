// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
)

// dataKeyVault is the private implementation of [KeyVault].
type dataKeyVault struct {
	params KDFParams
}

// NewDataKeyVault constructs a [KeyVault] with the given Argon2id parameters.
// Zero fields fall back to [DefaultKDFParams].
func NewDataKeyVault(params KDFParams) KeyVault {
	return &dataKeyVault{params: params.withDefaults()}
}

// GenerateDataKey implements [KeyVault].
func (v *dataKeyVault) GenerateDataKey() ([]byte, error) {
	return randomBytes(KeySize)
}

// DeriveWrappingKey implements [KeyVault].
func (v *dataKeyVault) DeriveWrappingKey(password string, salt []byte) []byte {
	return DeriveWrappingKey(password, salt, v.params)
}

// WrapDataKey implements [KeyVault].
func (v *dataKeyVault) WrapDataKey(dataKey, wrappingKey []byte) ([]byte, error) {
	if len(dataKey) != KeySize {
		return nil, ErrInvalidKeySize
	}
	return Seal(wrappingKey, dataKey)
}

// Wrap implements [KeyVault].
func (v *dataKeyVault) Wrap(dataKey []byte, password string) (WrappedKey, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return WrappedKey{}, fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := v.WrapDataKey(dataKey, v.DeriveWrappingKey(password, salt))
	if err != nil {
		return WrappedKey{}, fmt.Errorf("wrap data key: %w", err)
	}

	return WrappedKey{Salt: salt, Sealed: sealed}, nil
}

// Unwrap implements [KeyVault].
func (v *dataKeyVault) Unwrap(stored WrappedKey, password string) []byte {
	if stored.IsZero() {
		return nil
	}

	dataKey, err := Open(v.DeriveWrappingKey(password, stored.Salt), stored.Sealed)
	if err != nil || len(dataKey) != KeySize {
		return nil
	}

	return dataKey
}

// Rewrap implements [KeyVault]. The data key itself is never regenerated.
func (v *dataKeyVault) Rewrap(dataKey []byte, newPassword string) (WrappedKey, error) {
	return v.Wrap(dataKey, newPassword)
}
