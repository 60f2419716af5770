// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jca-proxy/models"
)

// FieldIdentifier targets the canonical identifier field of a jcadata record.
const FieldIdentifier = models.IdentifierField

// JcaDataValidator implements [Validator] for jcadata records. The record
// body is opaque, so the only rule is the presence of a valid identifier.
type JcaDataValidator struct{}

// NewJcaDataValidator constructs a JcaDataValidator and returns it as the
// Validator interface.
func NewJcaDataValidator() Validator {
	return &JcaDataValidator{}
}

// Validate accepts models.JcaData or *models.JcaData. Fields may only name
// [FieldIdentifier]; with no fields the identifier is checked as well.
func (v *JcaDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JcaData:
		return v.validateJcaData(ctx, value, fields...)
	case *models.JcaData:
		if value == nil {
			return ErrMissingIdentifier
		}
		return v.validateJcaData(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *JcaDataValidator) validateJcaData(_ context.Context, data models.JcaData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier}
	}

	for _, field := range fields {
		switch field {
		case FieldIdentifier:
			raw, ok := data[FieldIdentifier]
			if !ok || raw == nil {
				return ErrMissingIdentifier
			}
			if _, ok := data.Identifier(); !ok {
				return fmt.Errorf("%w: got %T", ErrInvalidIdentifier, raw)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
