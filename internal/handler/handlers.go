package handler

import (
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/handler/grpc"
	"github.com/MKhiriev/go-catalog-gateway/internal/handler/http"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(
	services *service.Services,
	health grpc.StateReporter,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Proxy, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(health, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
