package store

import (
	"database/sql"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a database/sql pool together with the dialect-specific pieces the
// repositories need: the goose dialect, the squirrel placeholder format and
// an optional error classificator.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isRetryable reports whether err was classified as transient. Databases
// without a classificator never report retryable errors.
func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
