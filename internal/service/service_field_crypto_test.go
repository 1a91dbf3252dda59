package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/mock"
	"github.com/MKhiriev/go-pii-keeper/migrations"
	"github.com/MKhiriev/go-pii-keeper/models"
)

func newTestFieldCrypto(t *testing.T) (FieldCryptoService, *mock.MockKeyCustodian) {
	t.Helper()
	custodian := mock.NewMockKeyCustodian(gomock.NewController(t))
	return NewFieldCryptoService(custodian, crypto.NewLookupHasher("lookup"), logger.Nop()), custodian
}

func TestFieldCryptoService_RoundTrip(t *testing.T) {
	fc, custodian := newTestFieldCrypto(t)
	custodian.EXPECT().Fetch(gomock.Any(), "s1").Return(testDataKey).AnyTimes()

	for _, plaintext := range []string{"", "alice@example.com", "enc:v1:", "enc:v1:not-base64", "Zoë ☕"} {
		sealed, err := fc.EncryptField(plaintext, testDataKey)
		require.NoError(t, err)
		assert.True(t, fc.IsEncrypted(sealed))

		got, ok := fc.DecryptPII(context.Background(), "s1", sealed)
		require.True(t, ok, plaintext)
		assert.Equal(t, plaintext, got)
	}
}

func TestFieldCryptoService_LegacyPassesThroughWithoutKey(t *testing.T) {
	fc, _ := newTestFieldCrypto(t)

	got, ok := fc.DecryptPII(context.Background(), "s1", "bob@example.com")
	assert.True(t, ok)
	assert.Equal(t, "bob@example.com", got)
	assert.False(t, fc.IsEncrypted("bob@example.com"))
}

func TestFieldCryptoService_NoKeyInSession(t *testing.T) {
	fc, custodian := newTestFieldCrypto(t)
	sealed, err := fc.EncryptField("secret", testDataKey)
	require.NoError(t, err)

	custodian.EXPECT().Fetch(gomock.Any(), "s1").Return(nil)

	got, ok := fc.DecryptPII(context.Background(), "s1", sealed)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFieldCryptoService_WrongKeyOrCorruptValue(t *testing.T) {
	fc, _ := newTestFieldCrypto(t)
	sealed, err := fc.EncryptField("secret", testDataKey)
	require.NoError(t, err)

	otherKey := []byte("fedcba9876543210fedcba9876543210")
	_, ok := fc.DecryptWithKey(context.Background(), otherKey, sealed)
	assert.False(t, ok)

	_, ok = fc.DecryptWithKey(context.Background(), testDataKey, "enc:v1:%%%")
	assert.False(t, ok)
}

func TestFieldCryptoService_HashEmailNormalizes(t *testing.T) {
	fc, _ := newTestFieldCrypto(t)

	assert.Equal(t, fc.HashEmail("alice@example.com"), fc.HashEmail("  ALICE@Example.com\t"))
	assert.NotEqual(t, fc.HashEmail("alice@example.com"), fc.HashEmail("bob@example.com"))
}

// A session that never had a key attached decrypts sealed values to null.
func TestFieldCryptoService_SessionWithoutKey(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "alice@example.com")
	stored := s.user(t, result.User.UserID)

	bare := models.Session{
		ID:        "bare-session",
		UserID:    result.User.UserID,
		CreatedAt: result.Session.CreatedAt,
		ExpiresAt: result.Session.ExpiresAt,
	}
	require.NoError(t, s.storages.SessionRepository.CreateSession(ctx, bare))

	got, ok := s.services.FieldCryptoService.DecryptPII(ctx, bare.ID, stored.Email)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFieldCryptoService_ConcurrentDecryptInOneSession(t *testing.T) {
	s := newTestStack(t, migrations.VersionEnvelopeEncryption)
	ctx := context.Background()
	result := s.register(t, "alice@example.com")
	stored := s.user(t, result.User.UserID)

	const workers = 8
	results := make([]string, workers)
	oks := make([]bool, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], oks[i] = s.services.FieldCryptoService.DecryptPII(ctx, result.Session.ID, stored.Email)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.True(t, oks[i])
		assert.Equal(t, "alice@example.com", results[i])
	}
}
