package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
)

// Capabilities records which optional envelope-encryption columns the
// connected schema has. It is resolved once at startup and never changes
// for the lifetime of the process.
type Capabilities struct {
	userWrappedDataKey bool
	userEmailHash      bool
	sessionDataKey     bool
	contactEmailHash   bool
}

// optionalColumn is one probe target.
type optionalColumn struct {
	table  string
	column string
	set    func(c *Capabilities)
}

var optionalColumns = []optionalColumn{
	{"users", "wrapped_data_key", func(c *Capabilities) { c.userWrappedDataKey = true }},
	{"users", "email_hash", func(c *Capabilities) { c.userEmailHash = true }},
	{"sessions", "data_key", func(c *Capabilities) { c.sessionDataKey = true }},
	{"contacts", "email_hash", func(c *Capabilities) { c.contactEmailHash = true }},
}

// AllCapabilities describes a fully migrated schema.
func AllCapabilities() Capabilities {
	return Capabilities{
		userWrappedDataKey: true,
		userEmailHash:      true,
		sessionDataKey:     true,
		contactEmailHash:   true,
	}
}

// ProbeCapabilities issues one zero-row SELECT per optional column. A
// missing column or table clears the flag; any other error aborts.
func ProbeCapabilities(ctx context.Context, db *DB) (Capabilities, error) {
	log := logger.FromContext(ctx)

	var caps Capabilities
	for _, col := range optionalColumns {
		present, err := db.columnExists(ctx, col.table, col.column)
		if err != nil {
			log.Err(err).Str("func", "ProbeCapabilities").
				Str("table", col.table).Str("column", col.column).
				Msg("capability probe failed")
			return Capabilities{}, fmt.Errorf("probing %s.%s: %w", col.table, col.column, err)
		}
		if present {
			col.set(&caps)
		} else {
			log.Warn().Str("func", "ProbeCapabilities").
				Str("table", col.table).Str("column", col.column).
				Msg("optional column is missing, running in degraded mode")
		}
	}

	return caps, nil
}

func (db *DB) columnExists(ctx context.Context, table, column string) (bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s LIMIT 0", column, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		if db.classify(err) == UndefinedColumn {
			return false, nil
		}
		return false, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if db.classify(err) == UndefinedColumn {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// UserEnvelope reports whether users can carry a wrapped data key and an
// email lookup hash. Signup encryption and migration require both.
func (c Capabilities) UserEnvelope() bool {
	return c.userWrappedDataKey && c.userEmailHash
}

// UserWrappedDataKey reports whether users.wrapped_data_key exists.
func (c Capabilities) UserWrappedDataKey() bool {
	return c.userWrappedDataKey
}

// UserEmailHash reports whether users.email_hash exists.
func (c Capabilities) UserEmailHash() bool {
	return c.userEmailHash
}

// SessionDataKey reports whether sessions can cache a data key.
func (c Capabilities) SessionDataKey() bool {
	return c.sessionDataKey
}

// ContactEmailHash reports whether contacts can be searched by email.
func (c Capabilities) ContactEmailHash() bool {
	return c.contactEmailHash
}

// FieldSealing reports whether PII may be written sealed. Sealing needs a
// place for the wrapped key and the email hash on users, and a session
// column to hold the unwrapped key; without the latter every sealed value
// would be unreadable after the request that wrote it.
func (c Capabilities) FieldSealing() bool {
	return c.UserEnvelope() && c.sessionDataKey
}

// HasHashColumn reports whether the lookup-hash companion of col exists.
func (c Capabilities) HasHashColumn(col PIIColumn) bool {
	switch {
	case col.HashColumn == "":
		return false
	case col.Table == UserEmail.Table:
		return c.userEmailHash
	case col.Table == ContactEmail.Table:
		return c.contactEmailHash
	}
	return false
}
