// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists backend auth sessions.
//
// [SessionStore] is implemented by an in-memory store and by a SQL store
// that runs on SQLite (file DSNs) or PostgreSQL ("postgres://" DSNs). The
// SQL schema is applied with goose from the migrations package.
package store

import (
	"context"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore saves, loads and deletes sessions by storage key.
type SessionStore interface {
	// Save inserts or replaces the session stored under key.
	Save(ctx context.Context, key string, session models.Session) error
	// Load returns the session under key or [ErrSessionNotFound].
	Load(ctx context.Context, key string) (models.Session, error)
	// Delete removes the session under key or returns [ErrSessionNotFound].
	Delete(ctx context.Context, key string) error
}
