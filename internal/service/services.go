package service

import (
	"github.com/MKhiriev/contact-keeper/internal/config"
	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContactService ContactService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
	}
}
