package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the driver-independent category of a database error.
type ErrorClass int

const (
	// Unclassified errors are returned to callers wrapped.
	Unclassified ErrorClass = iota

	// UniqueViolation means an insert or update hit a unique constraint.
	UniqueViolation

	// UndefinedColumn means the statement referenced a column or table the
	// schema does not have.
	UndefinedColumn
)

// ErrorClassificator maps driver errors to an ErrorClass.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.UndefinedColumn, pgerrcode.UndefinedTable:
		return UndefinedColumn
	}

	return Unclassified
}

// postgresError returns the SQLSTATE of err, or "" if err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// SQLiteErrorClassifier classifies go-sqlite3 errors.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch {
	case sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique,
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqliteErr.Code == sqlite3.ErrError:
		msg := sqliteErr.Error()
		if strings.Contains(msg, "no such column") || strings.Contains(msg, "no such table") {
			return UndefinedColumn
		}
	}

	return Unclassified
}
