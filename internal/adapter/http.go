package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

const defaultContentType = "application/json"

type httpWebhookForwarder struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPWebhookForwarder returns a [WebhookForwarder] using cfg.Timeout
// per request.
func NewHTTPWebhookForwarder(cfg config.Proxy, logger *logger.Logger) WebhookForwarder {
	return &httpWebhookForwarder{
		client: utils.NewHTTPClient(cfg.Timeout),
		logger: logger,
	}
}

// Forward POSTs body to target with contentType (JSON when empty). The
// upstream status, content type and body are returned whatever the status.
func (h *httpWebhookForwarder) Forward(ctx context.Context, target, contentType string, body []byte) (models.WebhookResponse, error) {
	if err := validateTarget(target); err != nil {
		return models.WebhookResponse{}, err
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = defaultContentType
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(target)
	if err != nil {
		h.logger.Err(err).Str("func", "httpWebhookForwarder.Forward").Str("target", redact(target)).Msg("webhook request failed")
		return models.WebhookResponse{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return models.WebhookResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}, nil
}

func validateTarget(target string) error {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, redact(target))
	}
	return nil
}

// redact keeps scheme and host only; webhook paths often embed secrets.
func redact(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return "<invalid>"
	}
	return u.Scheme + "://" + u.Host
}
