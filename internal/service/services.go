package service

import (
	"fmt"

	"github.com/MKhiriev/go-pii-keeper/internal/config"
	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	ContactService ContactService
	SessionService SessionService

	KeyVaultService    KeyVaultService
	KeyCustodian       KeyCustodian
	FieldCryptoService FieldCryptoService
	MigrationPolicy    MigrationPolicy
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sealer, err := crypto.NewSessionKeySealer(cfg.App.SessionKeySecret)
	if err != nil {
		return nil, fmt.Errorf("error creating session key sealer: %w", err)
	}

	vault := crypto.NewDataKeyVault(crypto.KDFParams{
		Time:    cfg.KDF.Time,
		Memory:  cfg.KDF.Memory,
		Threads: cfg.KDF.Threads,
	})

	keyVault := NewKeyVaultService(vault, storages.UserRepository, storages.Capabilities, logger)
	custodian := NewKeyCustodian(storages.SessionRepository, sealer, storages.Capabilities, logger)
	fieldCrypto := NewFieldCryptoService(custodian, crypto.NewLookupHasher(cfg.App.LookupHashKey), logger)
	migration := NewMigrationPolicy(fieldCrypto, storages.FieldUpgrader, storages.Capabilities, logger)

	return &Services{
		AuthService:        NewAuthService(storages, keyVault, custodian, fieldCrypto, migration, cfg.App, logger),
		ProfileService:     NewProfileService(storages, custodian, fieldCrypto, migration, logger),
		ContactService:     NewContactService(storages, custodian, fieldCrypto, migration, logger),
		SessionService:     NewSessionService(storages.SessionRepository, logger),
		KeyVaultService:    keyVault,
		KeyCustodian:       custodian,
		FieldCryptoService: fieldCrypto,
		MigrationPolicy:    migration,
	}, nil
}
