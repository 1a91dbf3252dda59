package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/models"
)

type contactRepository struct {
	logger *logger.Logger
	db     *DB
	caps   Capabilities
}

func NewContactRepository(db *DB, caps Capabilities, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		caps:   caps,
		logger: logger,
	}
}

func (r *contactRepository) columns() []string {
	cols := []string{"id", "user_id", "company", "contact_name", "email", "phone", "created_at"}
	if r.caps.ContactEmailHash() {
		cols = append(cols, "email_hash")
	}
	return cols
}

func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}

	values := map[string]any{
		"user_id":      contact.UserID,
		"company":      contact.Company,
		"contact_name": contact.ContactName,
		"email":        contact.Email,
		"phone":        contact.Phone,
		"created_at":   contact.CreatedAt,
	}
	if r.caps.ContactEmailHash() && contact.EmailHash != "" {
		values["email_hash"] = contact.EmailHash
	} else {
		contact.EmailHash = ""
	}

	query, args, err := r.db.builder().
		Insert(contactsTable).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&contact.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error inserting contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(ctx context.Context, userID int64) ([]models.Contact, error) {
	return r.query(ctx, "*contactRepository.ListContacts", sq.Eq{"user_id": userID})
}

// FindContactsByEmailHash returns the user's contacts whose email lookup
// hash matches. Legacy rows without a hash are not found.
func (r *contactRepository) FindContactsByEmailHash(ctx context.Context, userID int64, emailHash string) ([]models.Contact, error) {
	if !r.caps.ContactEmailHash() {
		return nil, ErrColumnUnavailable
	}
	return r.query(ctx, "*contactRepository.FindContactsByEmailHash", sq.Eq{"user_id": userID, "email_hash": emailHash})
}

func (r *contactRepository) query(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(r.columns()...).
		From(contactsTable).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var contact models.Contact
		var emailHash sql.NullString
		dest := []any{&contact.ID, &contact.UserID, &contact.Company, &contact.ContactName, &contact.Email, &contact.Phone, &contact.CreatedAt}
		if r.caps.ContactEmailHash() {
			dest = append(dest, &emailHash)
		}
		if err := rows.Scan(dest...); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contact.EmailHash = emailHash.String
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}
