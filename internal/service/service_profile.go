package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/internal/validators"
	"github.com/MKhiriev/go-pii-keeper/models"
)

type profileService struct {
	userRepository store.UserRepository
	custodian      KeyCustodian
	fieldCrypto    FieldCryptoService
	migration      MigrationPolicy
	finder         userFinder
	validator      validators.Validator
	caps           store.Capabilities

	logger *logger.Logger
}

func NewProfileService(
	storages *store.Storages,
	custodian KeyCustodian,
	fieldCrypto FieldCryptoService,
	migration MigrationPolicy,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository: storages.UserRepository,
		custodian:      custodian,
		fieldCrypto:    fieldCrypto,
		migration:      migration,
		finder: userFinder{
			userRepository: storages.UserRepository,
			fieldCrypto:    fieldCrypto,
			caps:           storages.Capabilities,
		},
		validator: validators.NewInputValidator(),
		caps:      storages.Capabilities,
		logger:    logger,
	}
}

// GetProfile returns the user's decrypted PII. Fields that cannot be opened
// in this session are nil; legacy fields are upgraded on the way.
func (p *profileService) GetProfile(ctx context.Context, userID int64, sessionID string) (models.Profile, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Profile{}, ErrSessionInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.GetProfile").
			Int64("user_id", userID).Msg("user search by id failed")
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	dataKey := p.custodian.Fetch(ctx, sessionID)

	return models.Profile{
		Email:         p.read(ctx, dataKey, store.UserEmail, user.UserID, user.Email),
		DisplayName:   p.read(ctx, dataKey, store.UserDisplayName, user.UserID, user.DisplayName),
		Phone:         p.read(ctx, dataKey, store.UserPhone, user.UserID, user.Phone),
		MonthlyBudget: p.read(ctx, dataKey, store.UserMonthlyBudget, user.UserID, user.MonthlyBudget),
	}, nil
}

func (p *profileService) read(ctx context.Context, dataKey []byte, column store.PIIColumn, userID int64, stored string) *string {
	plaintext, ok := p.migration.Read(ctx, dataKey, column, userID, stored)
	if !ok {
		return nil
	}
	return &plaintext
}

// UpdateProfile seals and writes the given fields. Writing requires the
// session's data key; without it ErrDataKeyUnavailable is returned and
// nothing is written.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, sessionID string, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	update = normalizeProfileUpdate(update)
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, invalidInput(err)
	}

	plain := make(map[store.PIIColumn]string)
	if update.Email != nil {
		email := *update.Email
		taken, err := p.finder.emailTaken(ctx, email, userID)
		if err != nil {
			return models.Profile{}, fmt.Errorf("email lookup failed: %w", err)
		}
		if taken {
			return models.Profile{}, ErrEmailTaken
		}
		plain[store.UserEmail] = email
	}
	if update.DisplayName != nil {
		plain[store.UserDisplayName] = *update.DisplayName
	}
	if update.Phone != nil {
		plain[store.UserPhone] = *update.Phone
	}
	if update.MonthlyBudget != nil {
		plain[store.UserMonthlyBudget] = *update.MonthlyBudget
	}

	values, err := p.storageValues(ctx, sessionID, plain)
	if err != nil {
		return models.Profile{}, err
	}

	err = p.userRepository.UpdateUserFields(ctx, userID, values)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Profile{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*profileService.UpdateProfile").Int64("user_id", userID).
			Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("error updating profile: %w", err)
	}

	return p.GetProfile(ctx, userID, sessionID)
}

// storageValues turns plaintext column values into what is written: sealed
// values plus the email lookup hash, or plaintext on a legacy schema.
func (p *profileService) storageValues(ctx context.Context, sessionID string, plain map[store.PIIColumn]string) (map[string]any, error) {
	values := make(map[string]any, len(plain)+1)

	if !p.caps.FieldSealing() {
		for column, value := range plain {
			values[column.Column] = value
		}
		return values, nil
	}

	dataKey := p.custodian.Fetch(ctx, sessionID)
	if dataKey == nil {
		return nil, ErrDataKeyUnavailable
	}

	for column, value := range plain {
		if value == "" {
			values[column.Column] = ""
			continue
		}
		sealed, err := p.fieldCrypto.EncryptField(value, dataKey)
		if err != nil {
			return nil, err
		}
		values[column.Column] = sealed
		if column.HashColumn != "" {
			values[column.HashColumn] = p.fieldCrypto.HashEmail(value)
		}
	}

	return values, nil
}

func normalizeProfileUpdate(update models.ProfileUpdate) models.ProfileUpdate {
	trim := func(v *string, normalize func(string) string) *string {
		if v == nil {
			return nil
		}
		out := normalize(*v)
		return &out
	}
	return models.ProfileUpdate{
		Email:         trim(update.Email, crypto.NormalizeEmail),
		DisplayName:   trim(update.DisplayName, strings.TrimSpace),
		Phone:         trim(update.Phone, strings.TrimSpace),
		MonthlyBudget: trim(update.MonthlyBudget, strings.TrimSpace),
	}
}
