package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
)

type fieldCryptoService struct {
	custodian KeyCustodian
	hasher    *crypto.LookupHasher

	logger *logger.Logger
}

// NewFieldCryptoService constructs a FieldCryptoService that resolves keys
// through custodian.
func NewFieldCryptoService(custodian KeyCustodian, hasher *crypto.LookupHasher, logger *logger.Logger) FieldCryptoService {
	return &fieldCryptoService{
		custodian: custodian,
		hasher:    hasher,
		logger:    logger,
	}
}

func (f *fieldCryptoService) EncryptField(plaintext string, dataKey []byte) (string, error) {
	return crypto.EncryptField(plaintext, dataKey)
}

func (f *fieldCryptoService) DecryptPII(ctx context.Context, sessionID, stored string) (string, bool) {
	if !crypto.IsEncrypted(stored) {
		return stored, true
	}
	return f.DecryptWithKey(ctx, f.custodian.Fetch(ctx, sessionID), stored)
}

func (f *fieldCryptoService) DecryptWithKey(ctx context.Context, dataKey []byte, stored string) (string, bool) {
	log := logger.FromContext(ctx)

	value, err := crypto.ParseFieldValue(stored)
	if err != nil {
		log.Warn().Err(err).Str("func", "*fieldCryptoService.DecryptWithKey").
			Msg("stored field value is corrupt")
		return "", false
	}

	switch v := value.(type) {
	case crypto.Plaintext:
		return string(v), true
	case crypto.Sealed:
		if dataKey == nil {
			log.Debug().Str("func", "*fieldCryptoService.DecryptWithKey").
				Msg("no data key in session, field left sealed")
			return "", false
		}

		plaintext, err := v.Open(dataKey)
		if err != nil {
			var openErr *crypto.OpenFailedError
			log.Warn().Err(err).Bool("auth_failed", errors.As(err, &openErr)).
				Str("func", "*fieldCryptoService.DecryptWithKey").
				Msg("data integrity: sealed field cannot be opened")
			return "", false
		}
		return plaintext, true
	}

	return "", false
}

func (f *fieldCryptoService) IsEncrypted(stored string) bool {
	return crypto.IsEncrypted(stored)
}

func (f *fieldCryptoService) HashEmail(email string) string {
	return f.hasher.HashEmail(crypto.NormalizeEmail(email))
}
