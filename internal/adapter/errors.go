package adapter

import "errors"

// Errors mirroring the persistence service's HTTP statuses. The store layer
// matches ErrNotFound; the rest are logged and surface as backend failures.
var (
	ErrBadRequest          = errors.New("persistence service: bad request")
	ErrUnauthorized        = errors.New("persistence service: unauthorized")
	ErrForbidden           = errors.New("persistence service: forbidden")
	ErrNotFound            = errors.New("persistence service: not found")
	ErrConflict            = errors.New("persistence service: conflict")
	ErrInternalServerError = errors.New("persistence service: internal server error")
	ErrBadGateway          = errors.New("persistence service: bad gateway")
	ErrServiceUnavailable  = errors.New("persistence service: service unavailable")
	ErrGatewayTimeout      = errors.New("persistence service: gateway timeout")
)

// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
var ErrDecodingResponse = errors.New("error decoding persistence service response")
