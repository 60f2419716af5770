package http

import (
	"time"

	"github.com/MKhiriev/jca-proxy/internal/config"
	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/service"
	"github.com/MKhiriev/jca-proxy/internal/utils"
	"github.com/MKhiriev/jca-proxy/internal/validators"
)

type Handler struct {
	services *service.Services

	secretValidator *validators.SecretValidator
	hasher          *utils.Hasher

	requestTimeout time.Duration
	maxBodyBytes   int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:        services,
		secretValidator: validators.NewSecretValidator(cfg.App.Secret),
		requestTimeout:  cfg.Server.RequestTimeout,
		maxBodyBytes:    cfg.Server.MaxBodyBytes,
		logger:          logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	return h
}
