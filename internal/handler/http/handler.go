package http

import (
	"net/http"

	"github.com/MKhiriev/contact-keeper/internal/config"
	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/service"
	"github.com/MKhiriev/contact-keeper/internal/utils"
	"github.com/MKhiriev/contact-keeper/models"
)

type Handler struct {
	services *service.Services

	serverConfig config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		serverConfig: cfg,
		logger:       logger,
	}
}

// writeError sends the shared failure envelope with the given fixed message.
// Internal error details never reach the response body; they are logged by
// the caller instead.
func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.Response{Message: message, Success: false}, statusCode)
}
