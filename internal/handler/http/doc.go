// Package http is the page-facing REST surface of the catalog gateway.
//
// Routes serve the public backend config, the normalized product list, the
// webhook proxy, menu visibility, UI translations and the server version.
// Every request gets a trace ID, an access log line and CORS headers before
// it reaches a handler.
package http
