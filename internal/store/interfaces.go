// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/jca-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JcaDataRepository is the backend-level persistence contract. Every backend
// (SQL, remote service, in-memory) implements it over named collections.
type JcaDataRepository interface {
	// FindByIdentifier returns the record stored under identifier, or
	// [ErrJcaDataNotFound].
	FindByIdentifier(ctx context.Context, collection, identifier string) (models.JcaData, error)

	// FindAll returns every record of the collection. An empty collection
	// yields an empty, non-nil slice.
	FindAll(ctx context.Context, collection string) ([]models.JcaData, error)

	// Upsert creates the record or replaces the one stored under identifier.
	Upsert(ctx context.Context, collection, identifier string, record models.JcaData) error
}

// JcaDataStorage is the storage the service layer works with. It is bound
// to a single collection.
type JcaDataStorage interface {
	Find(ctx context.Context, identifier string) (models.JcaData, error)
	FindAll(ctx context.Context) ([]models.JcaData, error)
	Save(ctx context.Context, identifier string, record models.JcaData) error
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
