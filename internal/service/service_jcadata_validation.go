package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jca-proxy/internal/validators"
	"github.com/MKhiriev/jca-proxy/models"
)

type JcaDataValidationService struct {
	inner     JcaDataService
	validator validators.Validator
}

func NewJcaDataValidationService() JcaDataServiceWrapper {
	return &JcaDataValidationService{
		validator: validators.NewJcaDataValidator(),
	}
}

// Fetch needs no validation: an empty identifier selects the whole
// collection.
func (v *JcaDataValidationService) Fetch(ctx context.Context, identifier string) (any, error) {
	return v.inner.Fetch(ctx, identifier)
}

func (v *JcaDataValidationService) Save(ctx context.Context, record models.JcaData) error {
	if err := v.validator.Validate(ctx, record, validators.FieldIdentifier); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingIdentifier, err)
	}

	return v.inner.Save(ctx, record)
}

func (v *JcaDataValidationService) Wrap(wrapped JcaDataService) JcaDataService {
	v.inner = wrapped
	return v
}
