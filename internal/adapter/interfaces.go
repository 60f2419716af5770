// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the remote persistence service
// that backs the "http" storage driver.
//
// [PersistenceAdapter] hides the wire protocol from the store layer. Error
// values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/jca-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/persistence_adapter_mock.go -package=mock

// PersistenceAdapter talks to a remote record store organised in named
// collections.
type PersistenceAdapter interface {
	// Find fetches a single record by identifier. Returns [ErrNotFound]
	// (wrapped) when the remote store has no such record.
	Find(ctx context.Context, collection, identifier string) (models.JcaData, error)

	// FindAll fetches every record of the collection in the order the remote
	// store returns them.
	FindAll(ctx context.Context, collection string) ([]models.JcaData, error)

	// Save creates or replaces the record stored under identifier.
	Save(ctx context.Context, collection, identifier string, record models.JcaData) error
}
