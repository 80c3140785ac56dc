package http

import (
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/service"
)

// maxWebhookBody caps the request body relayed to a webhook.
const maxWebhookBody = 1 << 20

type Handler struct {
	services *service.Services
	cors     corsPolicy

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Proxy, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cors:     newCORSPolicy(cfg.AllowedOrigins),
		logger:   logger,
	}
}
