package http

import (
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

type Handler struct {
	services   *service.Services
	validators *validators.Validators

	logger *logger.Logger
}

func NewHandler(services *service.Services, validators *validators.Validators, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		validators: validators,
		logger:     logger,
	}
}
