package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pii-keeper/internal/crypto"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/internal/validators"
	"github.com/MKhiriev/go-pii-keeper/models"
)

type contactService struct {
	contactRepository store.ContactRepository
	custodian         KeyCustodian
	fieldCrypto       FieldCryptoService
	migration         MigrationPolicy
	validator         validators.Validator
	caps              store.Capabilities

	logger *logger.Logger
}

func NewContactService(
	storages *store.Storages,
	custodian KeyCustodian,
	fieldCrypto FieldCryptoService,
	migration MigrationPolicy,
	logger *logger.Logger,
) ContactService {
	return &contactService{
		contactRepository: storages.ContactRepository,
		custodian:         custodian,
		fieldCrypto:       fieldCrypto,
		migration:         migration,
		validator:         validators.NewInputValidator(),
		caps:              storages.Capabilities,
		logger:            logger,
	}
}

// CreateContact seals every non-empty field under the session's data key
// and stores the email lookup hash when the schema has the column. A schema
// that cannot hold session keys gets the legacy plaintext form.
func (c *contactService) CreateContact(ctx context.Context, userID int64, sessionID string, contact models.NewContact) (models.ContactView, error) {
	log := logger.FromContext(ctx)

	contact.Company = strings.TrimSpace(contact.Company)
	contact.ContactName = strings.TrimSpace(contact.ContactName)
	contact.Email = crypto.NormalizeEmail(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)

	if err := c.validator.Validate(ctx, contact); err != nil {
		return models.ContactView{}, invalidInput(err)
	}

	record := models.Contact{
		UserID:      userID,
		Company:     contact.Company,
		ContactName: contact.ContactName,
		Email:       contact.Email,
		Phone:       contact.Phone,
	}
	if c.caps.FieldSealing() {
		dataKey := c.custodian.Fetch(ctx, sessionID)
		if dataKey == nil {
			return models.ContactView{}, ErrDataKeyUnavailable
		}
		for _, field := range []*string{&record.Company, &record.ContactName, &record.Email, &record.Phone} {
			if *field == "" {
				continue
			}
			sealed, err := c.fieldCrypto.EncryptField(*field, dataKey)
			if err != nil {
				return models.ContactView{}, err
			}
			*field = sealed
		}
	}
	if contact.Email != "" && c.caps.ContactEmailHash() {
		record.EmailHash = c.fieldCrypto.HashEmail(contact.Email)
	}

	saved, err := c.contactRepository.CreateContact(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*contactService.CreateContact").Int64("user_id", userID).
			Msg("error saving contact")
		return models.ContactView{}, fmt.Errorf("error saving contact: %w", err)
	}

	return models.ContactView{
		ID:          saved.ID,
		Company:     &contact.Company,
		ContactName: &contact.ContactName,
		Email:       &contact.Email,
		Phone:       &contact.Phone,
		CreatedAt:   saved.CreatedAt,
	}, nil
}

// ListContacts returns the user's contacts, decrypted where the session
// allows and upgraded where still legacy.
func (c *contactService) ListContacts(ctx context.Context, userID int64, sessionID string) ([]models.ContactView, error) {
	contacts, err := c.contactRepository.ListContacts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return c.views(ctx, sessionID, contacts), nil
}

// SearchContactsByEmail finds contacts by lookup hash. Legacy contacts that
// were never read after the hash column appeared have no hash yet and are
// not found.
func (c *contactService) SearchContactsByEmail(ctx context.Context, userID int64, sessionID, email string) ([]models.ContactView, error) {
	if !c.caps.ContactEmailHash() {
		return nil, ErrSearchUnavailable
	}

	email = crypto.NormalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidDataProvided
	}

	contacts, err := c.contactRepository.FindContactsByEmailHash(ctx, userID, c.fieldCrypto.HashEmail(email))
	if err != nil {
		return nil, fmt.Errorf("error searching contacts: %w", err)
	}
	return c.views(ctx, sessionID, contacts), nil
}

func (c *contactService) views(ctx context.Context, sessionID string, contacts []models.Contact) []models.ContactView {
	views := make([]models.ContactView, 0, len(contacts))
	if len(contacts) == 0 {
		return views
	}

	dataKey := c.custodian.Fetch(ctx, sessionID)
	for _, contact := range contacts {
		views = append(views, models.ContactView{
			ID:          contact.ID,
			Company:     c.read(ctx, dataKey, store.ContactCompany, contact.ID, contact.Company),
			ContactName: c.read(ctx, dataKey, store.ContactName, contact.ID, contact.ContactName),
			Email:       c.read(ctx, dataKey, store.ContactEmail, contact.ID, contact.Email),
			Phone:       c.read(ctx, dataKey, store.ContactPhone, contact.ID, contact.Phone),
			CreatedAt:   contact.CreatedAt,
		})
	}
	return views
}

func (c *contactService) read(ctx context.Context, dataKey []byte, column store.PIIColumn, contactID int64, stored string) *string {
	plaintext, ok := c.migration.Read(ctx, dataKey, column, contactID, stored)
	if !ok {
		return nil
	}
	return &plaintext
}
