package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
)

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.services.ConfigService.Connection()
	if err != nil {
		status, msg := mapServiceError(err)
		log.Err(err).Msg("backend configuration unavailable")
		utils.WriteError(w, msg, status)
		return
	}

	utils.WriteJSON(w, conn, http.StatusOK)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.CatalogService.LoadCollection(r.Context())
	if err != nil {
		status, msg := mapServiceError(err)
		log.Err(err).Msg("loading products failed")
		utils.WriteError(w, msg, status)
		return
	}

	log.Debug().Int("count", len(products)).Msg("products loaded")
	utils.WriteJSON(w, products, http.StatusOK)
}
