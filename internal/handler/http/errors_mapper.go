package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-catalog-gateway/internal/adapter"
	"github.com/MKhiriev/go-catalog-gateway/internal/app"
	"github.com/MKhiriev/go-catalog-gateway/internal/bootstrap"
	"github.com/MKhiriev/go-catalog-gateway/internal/credentials"
	"github.com/MKhiriev/go-catalog-gateway/internal/service"
)

// mapServiceError picks the response status and public message for err.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, app.MsgRequestCancelled
	case errors.Is(err, credentials.ErrMissingConfiguration):
		return http.StatusServiceUnavailable, app.MsgMissingConfiguration
	case errors.Is(err, bootstrap.ErrProbeFailed):
		return http.StatusServiceUnavailable, app.MsgBackendUnreachable
	case errors.Is(err, service.ErrClientUnavailable):
		return http.StatusServiceUnavailable, app.MsgClientUnavailable
	case errors.Is(err, service.ErrUnknownWebhook):
		return http.StatusNotFound, app.MsgUnknownWebhook
	case errors.Is(err, adapter.ErrUpstreamUnavailable):
		return http.StatusBadGateway, app.MsgUpstreamUnavailable
	default:
		return http.StatusInternalServerError, app.MsgInternalServerError
	}
}
