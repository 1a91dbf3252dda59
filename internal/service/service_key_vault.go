// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// keyVaultService is the concrete implementation of KeyVaultService.
type keyVaultService struct {
	// vault performs the key derivation and wrapping.
	vault crypto.KeyVault

	// userRepository holds the credential record (users.wrapped_data_key).
	userRepository store.UserRepository

	// caps tells whether the credential column exists at all.
	caps store.Capabilities

	logger *logger.Logger
}

// NewKeyVaultService constructs a KeyVaultService over vault and the user
// repository.
func NewKeyVaultService(vault crypto.KeyVault, userRepository store.UserRepository, caps store.Capabilities, logger *logger.Logger) KeyVaultService {
	return &keyVaultService{
		vault:          vault,
		userRepository: userRepository,
		caps:           caps,
		logger:         logger,
	}
}

func (k *keyVaultService) UnwrapDataKey(user models.User, password string) []byte {
	if user.WrappedDataKey == "" {
		return nil
	}

	stored, err := crypto.ParseWrappedKey(user.WrappedDataKey)
	if err != nil {
		return nil
	}

	return k.vault.Unwrap(stored, password)
}

func (k *keyVaultService) UnwrapDataKeyFromAuth(ctx context.Context, userID int64, password string) ([]byte, error) {
	user, err := k.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyVaultService.UnwrapDataKeyFromAuth").
			Int64("user_id", userID).Msg("error loading credential record")
		return nil, fmt.Errorf("error loading credential record: %w", err)
	}

	return k.UnwrapDataKey(user, password), nil
}

func (k *keyVaultService) NewWrappedDataKey(password string) ([]byte, string, error) {
	dataKey, err := k.vault.GenerateDataKey()
	if err != nil {
		return nil, "", fmt.Errorf("error generating data key: %w", err)
	}

	wrapped, err := k.vault.Wrap(dataKey, password)
	if err != nil {
		return nil, "", fmt.Errorf("error wrapping data key: %w", err)
	}

	return dataKey, wrapped.String(), nil
}

func (k *keyVaultService) Backfill(ctx context.Context, userID int64, password string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if !k.caps.UserWrappedDataKey() {
		return nil, store.ErrColumnUnavailable
	}

	dataKey, wrapped, err := k.NewWrappedDataKey(password)
	if err != nil {
		return nil, err
	}

	if err = k.userRepository.UpdateWrappedDataKey(ctx, userID, wrapped); err != nil {
		log.Err(err).Str("func", "*keyVaultService.Backfill").Int64("user_id", userID).
			Msg("error storing backfilled data key")
		return nil, fmt.Errorf("error storing backfilled data key: %w", err)
	}

	log.Info().Str("func", "*keyVaultService.Backfill").Int64("user_id", userID).
		Msg("data key backfilled for legacy user")
	return dataKey, nil
}

func (k *keyVaultService) RewrapForPasswordChange(dataKey []byte, newPassword string) (string, error) {
	wrapped, err := k.vault.Rewrap(dataKey, newPassword)
	if err != nil {
		return "", fmt.Errorf("error rewrapping data key: %w", err)
	}
	return wrapped.String(), nil
}
