package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/jca-proxy/internal/adapter"
	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/models"
)

// remoteJcaDataRepository delegates to a remote persistence service through
// an [adapter.PersistenceAdapter].
type remoteJcaDataRepository struct {
	adapter adapter.PersistenceAdapter
	logger  *logger.Logger
}

// NewRemoteJcaDataRepository constructs a [JcaDataRepository] backed by a
// remote persistence service.
func NewRemoteJcaDataRepository(persistence adapter.PersistenceAdapter, logger *logger.Logger) JcaDataRepository {
	logger.Debug().Msg("creating remote jcadata repository")
	return &remoteJcaDataRepository{adapter: persistence, logger: logger}
}

func (r *remoteJcaDataRepository) FindByIdentifier(ctx context.Context, collection, identifier string) (models.JcaData, error) {
	record, err := r.adapter.Find(ctx, collection, identifier)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, ErrJcaDataNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteJcaDataRepository.FindByIdentifier").
			Str("identifier", identifier).
			Msg("remote storage request failed")
		return nil, err
	}

	return record, nil
}

func (r *remoteJcaDataRepository) FindAll(ctx context.Context, collection string) ([]models.JcaData, error) {
	records, err := r.adapter.FindAll(ctx, collection)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteJcaDataRepository.FindAll").
			Str("collection", collection).
			Msg("remote storage request failed")
		return nil, err
	}

	if records == nil {
		records = []models.JcaData{}
	}
	return records, nil
}

func (r *remoteJcaDataRepository) Upsert(ctx context.Context, collection, identifier string, record models.JcaData) error {
	if err := r.adapter.Save(ctx, collection, identifier, record); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*remoteJcaDataRepository.Upsert").
			Str("identifier", identifier).
			Msg("remote storage request failed")
		return err
	}

	return nil
}
