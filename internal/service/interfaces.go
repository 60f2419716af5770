package service

import (
	"context"

	"github.com/MKhiriev/jca-proxy/models"
)

// JcaDataService is the only component that talks to the jcadata storage.
type JcaDataService interface {
	// Fetch returns the record stored under identifier as models.JcaData.
	// With an empty identifier it returns the whole collection as
	// []models.JcaData instead.
	Fetch(ctx context.Context, identifier string) (any, error)

	// Save stores record under its own identifier.
	Save(ctx context.Context, record models.JcaData) error
}

// JcaDataServiceWrapper defines middleware composition for JcaDataService.
// Implementations wrap an existing JcaDataService to add behavior such as
// logging or validating.
type JcaDataServiceWrapper interface {
	Wrap(JcaDataService) JcaDataService // returns a decorated JcaDataService applying additional behavior
}
