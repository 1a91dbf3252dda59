// Package migrations embeds the goose migrations of every supported SQL
// dialect and applies them.
//
// Version 1 is the pre-encryption schema. Version 2 adds the optional
// envelope-encryption columns; a database left at version 1 runs the
// service in degraded mode.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	// VersionLegacySchema is the schema before envelope encryption.
	VersionLegacySchema int64 = 1

	// VersionEnvelopeEncryption adds wrapped keys, lookup hashes and the
	// session data key column.
	VersionEnvelopeEncryption int64 = 2
)

var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate applies every pending migration for the given database/sql
// driver name ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	return MigrateTo(db, driver, goose.MaxVersion)
}

// MigrateTo applies migrations up to and including version.
func MigrateTo(db *sql.DB, driver string, version int64) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpTo(db, dir, version); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
