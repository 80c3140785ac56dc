package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-catalog-gateway/internal/app"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
)

func (h *Handler) forwardWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, app.MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("reading webhook body failed")
		utils.WriteError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	resp, err := h.services.WebhookService.Forward(r.Context(), name, r.Header.Get("Content-Type"), body)
	if err != nil {
		status, msg := mapServiceError(err)
		log.Err(err).Str("webhook", name).Msg("webhook forwarding failed")
		utils.WriteError(w, msg, status)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}
