package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/jca-proxy/internal/service"
	"github.com/MKhiriev/jca-proxy/internal/store"
)

var fetchErrorStatusMap = map[error]int{
	store.ErrJcaDataNotFound:  http.StatusNotFound,
	service.ErrBackendTimeout: http.StatusGatewayTimeout,
}

var saveErrorStatusMap = map[error]int{
	service.ErrMissingIdentifier: http.StatusBadRequest,
	service.ErrBackendTimeout:    http.StatusGatewayTimeout,
}

// statusFromError returns the status of the first sentinel in statuses that
// err wraps, or fallback.
func statusFromError(err error, statuses map[error]int, fallback int) int {
	for target, status := range statuses {
		if errors.Is(err, target) {
			return status
		}
	}
	return fallback
}
