package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrJcaDataNotFound is returned when no record is stored under the
	// requested identifier.
	ErrJcaDataNotFound = errors.New("jcadata was not found")

	// ErrJcaDataNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrJcaDataNotSaved = errors.New("jcadata was not saved")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// storage driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan jcadata row")

	// ErrScanningRows is returned when multi-row iteration fails, typically
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan jcadata rows")

	// ErrMarshalingRecord is returned when a record cannot be encoded as JSON
	// before it is written.
	ErrMarshalingRecord = errors.New("failed to marshal jcadata record")

	// ErrUnmarshalingRecord is returned when a stored record is not a valid
	// JSON object.
	ErrUnmarshalingRecord = errors.New("failed to unmarshal jcadata record")
)
