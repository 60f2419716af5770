package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/models"
)

// sqlJcaDataRepository is the relational implementation of
// [JcaDataRepository]. The same code serves PostgreSQL and SQLite; the
// dialect differences live in [DB].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database failures are logged with the request's trace_id.
type sqlJcaDataRepository struct {
	*DB
	logger *logger.Logger
}

// NewSQLJcaDataRepository constructs a [JcaDataRepository] backed by db.
func NewSQLJcaDataRepository(db *DB, logger *logger.Logger) JcaDataRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql jcadata repository")
	return &sqlJcaDataRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sqlJcaDataRepository) FindByIdentifier(ctx context.Context, collection, identifier string) (models.JcaData, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindJcaDataQuery(r.placeholder, collection, identifier)
	if err != nil {
		log.Err(err).Str("func", "*sqlJcaDataRepository.FindByIdentifier").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw []byte
	err = r.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJcaDataNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*sqlJcaDataRepository.FindByIdentifier").
			Str("collection", collection).
			Str("identifier", identifier).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to find jcadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	record, err := models.UnmarshalJcaData(raw)
	if err != nil {
		log.Err(err).
			Str("func", "*sqlJcaDataRepository.FindByIdentifier").
			Str("identifier", identifier).
			Msg("stored record is not a JSON object")
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalingRecord, err)
	}

	return record, nil
}

func (r *sqlJcaDataRepository) FindAll(ctx context.Context, collection string) ([]models.JcaData, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllJcaDataQuery(r.placeholder, collection)
	if err != nil {
		log.Err(err).Str("func", "*sqlJcaDataRepository.FindAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sqlJcaDataRepository.FindAll").
			Str("collection", collection).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to query jcadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.JcaData, 0)
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			log.Err(err).Str("func", "*sqlJcaDataRepository.FindAll").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record, err := models.UnmarshalJcaData(raw)
		if err != nil {
			log.Err(err).Str("func", "*sqlJcaDataRepository.FindAll").Msg("stored record is not a JSON object")
			return nil, fmt.Errorf("%w: %w", ErrUnmarshalingRecord, err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlJcaDataRepository.FindAll").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *sqlJcaDataRepository) Upsert(ctx context.Context, collection, identifier string, record models.JcaData) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshalingRecord, err)
	}

	query, args, err := buildUpsertJcaDataQuery(r.placeholder, collection, identifier, raw)
	if err != nil {
		log.Err(err).Str("func", "*sqlJcaDataRepository.Upsert").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*sqlJcaDataRepository.Upsert").
			Str("collection", collection).
			Str("identifier", identifier).
			Str("pg_code", postgresErrorCode(err)).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to upsert jcadata")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Error().
			Str("func", "*sqlJcaDataRepository.Upsert").
			Str("identifier", identifier).
			Msg("upsert affected no rows")
		return ErrJcaDataNotSaved
	}

	log.Debug().
		Str("func", "*sqlJcaDataRepository.Upsert").
		Str("collection", collection).
		Str("identifier", identifier).
		Msg("jcadata saved")

	return nil
}
