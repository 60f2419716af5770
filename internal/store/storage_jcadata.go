// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/models"
)

// jcaDataStorage is the default implementation of [JcaDataStorage].
//
// It binds a backend [JcaDataRepository] to the configured collection so the
// service layer only ever deals with identifiers.
type jcaDataStorage struct {
	repository JcaDataRepository
	collection string
	logger     *logger.Logger
}

// NewJcaDataStorage constructs a [JcaDataStorage] over repository that keeps
// its records in collection.
func NewJcaDataStorage(repository JcaDataRepository, collection string, logger *logger.Logger) JcaDataStorage {
	logger.Debug().Str("collection", collection).Msg("creating jcadata storage")
	return &jcaDataStorage{
		repository: repository,
		collection: collection,
		logger:     logger,
	}
}

// Find returns the record stored under identifier or [ErrJcaDataNotFound].
func (s *jcaDataStorage) Find(ctx context.Context, identifier string) (models.JcaData, error) {
	return s.repository.FindByIdentifier(ctx, s.collection, identifier)
}

// FindAll returns every record of the collection, never nil.
func (s *jcaDataStorage) FindAll(ctx context.Context) ([]models.JcaData, error) {
	records, err := s.repository.FindAll(ctx, s.collection)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.JcaData{}
	}

	return records, nil
}

// Save writes record under identifier exactly as given.
func (s *jcaDataStorage) Save(ctx context.Context, identifier string, record models.JcaData) error {
	return s.repository.Upsert(ctx, s.collection, identifier, record)
}
