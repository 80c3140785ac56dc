package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-catalog-gateway/internal/adapter"
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

type webhookService struct {
	targets   map[string]string
	forwarder adapter.WebhookForwarder

	logger *logger.Logger
}

// NewWebhookService forwards to the targets configured in cfg.Webhooks.
// Names are matched case-insensitively.
func NewWebhookService(cfg config.Proxy, forwarder adapter.WebhookForwarder, log *logger.Logger) WebhookService {
	targets := make(map[string]string, len(cfg.Webhooks))
	for name, target := range cfg.Webhooks {
		targets[strings.ToLower(strings.TrimSpace(name))] = target
	}
	return &webhookService{
		targets:   targets,
		forwarder: forwarder,
		logger:    log.WithComponent("webhooks"),
	}
}

func (s *webhookService) Forward(ctx context.Context, name, contentType string, body []byte) (models.WebhookResponse, error) {
	target, ok := s.targets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.WebhookResponse{}, fmt.Errorf("%w: %q", ErrUnknownWebhook, name)
	}

	resp, err := s.forwarder.Forward(ctx, target, contentType, body)
	if err != nil {
		s.logger.Err(err).Str("func", "webhookService.Forward").Str("webhook", name).Msg("webhook forwarding failed")
		return models.WebhookResponse{}, err
	}

	s.logger.Debug().
		Str("func", "webhookService.Forward").
		Str("webhook", name).
		Int("status", resp.StatusCode).
		Msg("webhook forwarded")
	return resp, nil
}
