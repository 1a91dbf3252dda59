package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pii-keeper/internal/logger"
)

// fieldRepository performs compare-and-swap upgrades of single PII columns.
type fieldRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFieldUpgrader(db *DB, logger *logger.Logger) FieldUpgrader {
	logger.Debug().Msg("creating field upgrader")
	return &fieldRepository{
		db:     db,
		logger: logger,
	}
}

// UpgradeField issues
//
//	UPDATE <table> SET <column> = sealed[, <hash column> = hash]
//	WHERE <id column> = rowID AND <column> = legacy
//
// so a concurrent writer that already replaced the value wins.
func (r *fieldRepository) UpgradeField(ctx context.Context, column PIIColumn, rowID int64, legacy, sealed, hash string) (bool, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder().
		Update(column.Table).
		Set(column.Column, sealed).
		Where(sq.Eq{column.IDColumn: rowID, column.Column: legacy})
	if column.HashColumn != "" && hash != "" {
		update = update.Set(column.HashColumn, hash)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fieldRepository.UpgradeField").
			Str("table", column.Table).Str("column", column.Column).Int64("row_id", rowID).
			Msg("error upgrading field")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
