package service

import (
	"github.com/MKhiriev/jca-proxy/internal/logger"
	"github.com/MKhiriev/jca-proxy/internal/store"
)

type Services struct {
	JcaDataService JcaDataService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		JcaDataService: NewJcaDataValidationService().Wrap(NewJcaDataService(storages.JcaDataStorage, logger)),
	}
}
