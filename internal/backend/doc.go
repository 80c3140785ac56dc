// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend is the HTTP client for the catalog backend: key-based
// row reads over named resources (PostgREST wire format) and a small auth
// subsystem that keeps, persists and refreshes the current session.
//
// A [Client] is built from a [models.Connection] and a fixed
// [ClientOptions] profile. Transport-level failures are mapped to the
// sentinel errors in errors.go so callers can match them with [errors.Is].
package backend
