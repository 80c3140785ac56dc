package http

import (
	"net/http"

	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
)

func (h *Handler) getMenuVisibility(w http.ResponseWriter, r *http.Request) {
	visibility := h.services.NavigationService.MenuVisibility(r.Context(), r.URL.Query().Get("role"))
	utils.WriteJSON(w, visibility, http.StatusOK)
}

func (h *Handler) getTranslations(w http.ResponseWriter, r *http.Request) {
	translations := h.services.TranslationService.Translations(r.Context(),
		r.URL.Query().Get("lang"),
		r.Header.Get("Accept-Language"),
	)

	w.Header().Set("Content-Language", translations.Language)
	w.Header().Add("Vary", "Accept-Language")
	utils.WriteJSON(w, translations, http.StatusOK)
}
