// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings written into HTTP
// error bodies by the catalog gateway handlers.
package app

const (
	// MsgMissingConfiguration is returned by /api/config and /api/products
	// when the backend URL or anon key cannot be resolved.
	MsgMissingConfiguration = "backend is not configured: set VITE_SUPABASE_URL and VITE_SUPABASE_ANON_KEY"

	// MsgBackendUnreachable is returned when the connectivity probe failed.
	MsgBackendUnreachable = "backend is unreachable"

	// MsgClientUnavailable is returned when the shared client could not be
	// built for any other reason.
	MsgClientUnavailable = "backend client unavailable"

	// MsgUnknownWebhook is returned for a webhook name with no target.
	MsgUnknownWebhook = "unknown webhook"

	// MsgUpstreamUnavailable is returned when the webhook target could not
	// be reached.
	MsgUpstreamUnavailable = "webhook upstream unavailable"

	// MsgRequestCancelled is returned when the request context ended before
	// the backend answered.
	MsgRequestCancelled = "request cancelled"

	// MsgInvalidRequestBody is returned when the request body cannot be read.
	MsgInvalidRequestBody = "invalid request body"

	// MsgRequestBodyTooLarge is returned when a webhook body exceeds the limit.
	MsgRequestBodyTooLarge = "request body too large"

	// MsgMethodNotAllowed is returned for a known path with a wrong method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
