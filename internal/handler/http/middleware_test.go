package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/utils"
)

func newTestHandler() *Handler {
	return &Handler{cors: newCORSPolicy([]string{"*"}), logger: logger.Nop()}
}

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func configProxy(origins ...string) config.Proxy {
	return config.Proxy{AllowedOrigins: origins}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTestHandler()

	var fromCtx string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = utils.GetTraceIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	traceID := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, traceID, fromCtx)
}

func TestWithTraceID_ReusesValidID(t *testing.T) {
	h := newTestHandler()
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_ReplacesInvalidID(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	got := rec.Header().Get(traceIDHeader)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	newTestHandler().withLogging(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"uri":"/test"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"size":2`)
}

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n, err := rw.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 3, rw.size)
}

func TestResponseWriter_FirstHeaderWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantOrigin string
	}{
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", wantOrigin: "*"},
		{name: "listed origin", allowed: []string{"https://shop.example/"}, origin: "https://Shop.example", wantOrigin: "https://Shop.example"},
		{name: "unlisted origin", allowed: []string{"https://shop.example"}, origin: "https://evil.example", wantOrigin: ""},
		{name: "no origin header", allowed: []string{"*"}, origin: "", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{cors: newCORSPolicy(tt.allowed), logger: logger.Nop()}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.withCORS(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestWithCORS_Preflight(t *testing.T) {
	h := newTestHandler()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/webhooks/orders", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.withCORS(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, called)
	assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
}
