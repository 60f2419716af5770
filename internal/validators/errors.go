package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives anything other
	// than a models.JcaData.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrUnknownField is returned for a field name the validator has no
	// rule for.
	ErrUnknownField = errors.New("unknown field for validation")

	ErrMissingIdentifier = errors.New("jcadata identifier is missing")
	ErrInvalidIdentifier = errors.New("jcadata identifier must be a non-empty string")
)
