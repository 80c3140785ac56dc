package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses a valid incoming X-Trace-ID or creates a new one, echoes
// it in the response and attaches a trace-scoped logger to the context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = utils.NewTraceID()
		}
		w.Header().Set(traceIDHeader, traceID)

		l := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
