package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jca-proxy/internal/adapter"
	"github.com/MKhiriev/jca-proxy/internal/config"
	"github.com/MKhiriev/jca-proxy/internal/logger"
)

// Storages aggregates every storage the services depend on, plus the
// resources that have to be released on shutdown.
type Storages struct {
	JcaDataStorage JcaDataStorage

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver, applies migrations to
// relational backends, and returns the ready-to-use storages.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Str("collection", cfg.Collection).Msg("initialising storage")

	var (
		repository JcaDataRepository
		db         *DB
		err        error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case config.DriverHTTP:
		persistence, adapterErr := adapter.NewHTTPPersistenceAdapter(cfg.Remote.Address, cfg.Remote.RequestTimeout, log)
		if adapterErr != nil {
			return nil, adapterErr
		}
		repository = NewRemoteJcaDataRepository(persistence, log)
	case config.DriverMemory:
		repository = NewMemoryJcaDataRepository()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if db != nil {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
			_ = db.Close()
			return nil, err
		}
		repository = NewSQLJcaDataRepository(db, log)
	}

	return &Storages{
		JcaDataStorage: NewJcaDataStorage(repository, cfg.Collection, log),
		db:             db,
	}, nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
