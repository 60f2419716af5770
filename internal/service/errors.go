package service

import "errors"

var (
	ErrMissingIdentifier = errors.New("jcadata identifier is missing or invalid")

	// ErrBackendTimeout is returned when the request deadline passes before
	// the storage answers.
	ErrBackendTimeout = errors.New("storage did not respond in time")
)
