package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/store"
	"github.com/MKhiriev/jca-proxy/models"
)

type jcaDataService struct {
	storage store.JcaDataStorage

	logger *logger.Logger
}

func NewJcaDataService(storage store.JcaDataStorage, logger *logger.Logger) JcaDataService {
	return &jcaDataService{
		storage: storage,
		logger:  logger,
	}
}

func (s *jcaDataService) Fetch(ctx context.Context, identifier string) (any, error) {
	log := logger.FromContext(ctx)

	if identifier == "" {
		records, err := await(ctx, s.storage.FindAll)
		if err != nil {
			log.Err(err).Str("func", "*jcaDataService.Fetch").Msg("failed to fetch all jcadata")
			return nil, fmt.Errorf("error fetching all jcadata: %w", err)
		}
		if records == nil {
			records = []models.JcaData{}
		}
		return records, nil
	}

	record, err := await(ctx, func(ctx context.Context) (models.JcaData, error) {
		return s.storage.Find(ctx, identifier)
	})
	if err != nil {
		log.Err(err).Str("func", "*jcaDataService.Fetch").Str("identifier", identifier).Msg("failed to fetch jcadata")
		return nil, fmt.Errorf("error fetching jcadata %q: %w", identifier, err)
	}

	return record, nil
}

func (s *jcaDataService) Save(ctx context.Context, record models.JcaData) error {
	log := logger.FromContext(ctx)

	identifier, ok := record.Identifier()
	if !ok {
		return ErrMissingIdentifier
	}

	_, err := await(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.storage.Save(ctx, identifier, record)
	})
	if err != nil {
		log.Err(err).Str("func", "*jcaDataService.Save").Str("identifier", identifier).Msg("failed to save jcadata")
		return fmt.Errorf("error saving jcadata %q: %w", identifier, err)
	}

	log.Info().Str("identifier", identifier).Msg("jcadata saved")
	return nil
}
