package service

import (
	"context"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/models"
)

// migrationPolicy decorates FieldCryptoService reads with an in-place
// upgrade of legacy values. The upgrade is a compare-and-swap on the legacy
// value, so running it twice or concurrently is a no-op for the loser.
type migrationPolicy struct {
	fieldCrypto   FieldCryptoService
	fieldUpgrader store.FieldUpgrader
	caps          store.Capabilities

	logger *logger.Logger
}

// NewMigrationPolicy constructs a MigrationPolicy.
func NewMigrationPolicy(fieldCrypto FieldCryptoService, fieldUpgrader store.FieldUpgrader, caps store.Capabilities, logger *logger.Logger) MigrationPolicy {
	return &migrationPolicy{
		fieldCrypto:   fieldCrypto,
		fieldUpgrader: fieldUpgrader,
		caps:          caps,
		logger:        logger,
	}
}

func (m *migrationPolicy) Read(ctx context.Context, dataKey []byte, column store.PIIColumn, rowID int64, stored string) (string, bool) {
	plaintext, ok := m.fieldCrypto.DecryptWithKey(ctx, dataKey, stored)
	if !ok || m.fieldCrypto.IsEncrypted(stored) {
		return plaintext, ok
	}

	m.upgrade(ctx, dataKey, column, rowID, plaintext)
	return plaintext, true
}

func (m *migrationPolicy) UpgradeUser(ctx context.Context, user models.User, dataKey []byte) models.User {
	for _, column := range store.UserPIIColumns {
		field := userField(&user, column)
		if field == nil || m.fieldCrypto.IsEncrypted(*field) {
			continue
		}

		sealed, hash, upgraded := m.upgrade(ctx, dataKey, column, user.UserID, *field)
		if !upgraded {
			continue
		}
		*field = sealed
		if hash != "" {
			user.EmailHash = hash
		}
	}

	return user
}

// upgrade seals legacy and writes it back. It reports the written values
// and whether this call changed the row.
func (m *migrationPolicy) upgrade(ctx context.Context, dataKey []byte, column store.PIIColumn, rowID int64, legacy string) (string, string, bool) {
	log := logger.FromContext(ctx).With().
		Str("func", "*migrationPolicy.upgrade").
		Str("table", column.Table).Str("column", column.Column).Int64("row_id", rowID).
		Logger()

	switch {
	case !m.enabled(column):
		log.Debug().Msg("schema has no envelope columns, migration skipped")
		return "", "", false
	case legacy == "":
		return "", "", false
	case dataKey == nil:
		log.Debug().Msg("no data key in session, migration skipped")
		return "", "", false
	}

	var hash string
	if m.caps.HasHashColumn(column) {
		hash = m.fieldCrypto.HashEmail(legacy)
	}

	sealed, err := m.fieldCrypto.EncryptField(legacy, dataKey)
	if err != nil {
		log.Warn().Err(err).Msg("error sealing legacy value")
		return "", "", false
	}

	upgraded, err := m.fieldUpgrader.UpgradeField(ctx, column, rowID, legacy, sealed, hash)
	if err != nil {
		log.Warn().Err(err).Msg("error writing upgraded value, row stays legacy")
		return "", "", false
	}
	if !upgraded {
		log.Debug().Msg("value changed concurrently, upgrade dropped")
		return "", "", false
	}

	log.Info().Msg("legacy value upgraded")
	return sealed, hash, true
}

func (m *migrationPolicy) enabled(column store.PIIColumn) bool {
	if !m.caps.FieldSealing() {
		return false
	}
	switch column.Table {
	case store.UserEmail.Table:
		return true
	case store.ContactEmail.Table:
		return m.caps.ContactEmailHash()
	}
	return false
}

func userField(user *models.User, column store.PIIColumn) *string {
	switch column {
	case store.UserEmail:
		return &user.Email
	case store.UserDisplayName:
		return &user.DisplayName
	case store.UserPhone:
		return &user.Phone
	case store.UserMonthlyBudget:
		return &user.MonthlyBudget
	}
	return nil
}
