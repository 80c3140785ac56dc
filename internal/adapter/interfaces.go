// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to third-party HTTP endpoints on behalf of the
// gateway. [WebhookForwarder] relays browser form submissions to automation
// webhooks so the page never calls them cross-origin.
//
// Transport failures are wrapped in [ErrUpstreamUnavailable]. Upstream
// non-2xx responses are not errors: their status and body are relayed as-is.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/webhook_forwarder_mock.go -package=mock

// WebhookForwarder posts a body to a webhook URL and returns the upstream
// response.
type WebhookForwarder interface {
	Forward(ctx context.Context, target, contentType string, body []byte) (models.WebhookResponse, error)
}
