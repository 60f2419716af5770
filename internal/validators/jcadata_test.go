package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/jca-proxy/models"
	"github.com/stretchr/testify/assert"
)

func TestJcaDataValidator_Validate(t *testing.T) {
	ctx := context.Background()
	valid := models.JcaData{"identifier": "srv1", "status": "ok"}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: valid},
		{name: "valid pointer", obj: &valid},
		{name: "explicit identifier field", obj: valid, fields: []string{FieldIdentifier}},
		{name: "missing identifier", obj: models.JcaData{"status": "ok"}, wantErr: ErrMissingIdentifier},
		{name: "null identifier", obj: models.JcaData{"identifier": nil}, wantErr: ErrMissingIdentifier},
		{name: "legacy id only", obj: models.JcaData{"id": "srv1"}, wantErr: ErrMissingIdentifier},
		{name: "empty identifier", obj: models.JcaData{"identifier": ""}, wantErr: ErrInvalidIdentifier},
		{name: "numeric identifier", obj: models.JcaData{"identifier": json.Number("7")}, wantErr: ErrInvalidIdentifier},
		{name: "nil pointer", obj: (*models.JcaData)(nil), wantErr: ErrMissingIdentifier},
		{name: "unknown field", obj: valid, fields: []string{"status"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: map[string]any{"identifier": "srv1"}, wantErr: ErrUnsupportedType},
	}

	v := NewJcaDataValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
