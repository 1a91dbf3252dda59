package http

import (
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/service"
)

// Handler serves the JSON API. It only talks to the services that own
// credentials and PII; key material never reaches this layer.
type Handler struct {
	users    service.AuthService
	profiles service.ProfileService
	contacts service.ContactService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		users:    services.AuthService,
		profiles: services.ProfileService,
		contacts: services.ContactService,
		logger:   logger,
	}
}
