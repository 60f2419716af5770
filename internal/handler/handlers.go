// Package handler builds the transport handlers exposed by the proxy.
package handler

import (
	"github.com/MKhiriev/jca-proxy/internal/config"
	"github.com/MKhiriev/jca-proxy/internal/handler/http"
	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/service"
)

// Handlers groups the handlers handed to the server package. HTTP is the
// only transport the proxy speaks.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when the server has somewhere to
// listen, which is either an explicit address or a port.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, log *logger.Logger) (*Handlers, error) {
	if cfg.Server.HTTPAddress == "" && cfg.Server.Port == 0 {
		return nil, errNoHandlersAreCreated
	}

	log.Debug().
		Str("address", cfg.Server.ListenAddress()).
		Msg("creating HTTP handler")

	return &Handlers{HTTP: http.NewHandler(services, cfg, log)}, nil
}
