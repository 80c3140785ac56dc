// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by session stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session is stored under the
	// requested key.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyStorageKey is returned when an operation is called with an
	// empty storage key.
	ErrEmptyStorageKey = errors.New("empty storage key")
)

// Low-level database operation errors, wrapped by SQL store methods.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT/DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a session row fails.
	ErrScanningRow = errors.New("failed to scan session row")

	// ErrOpeningDatabase is returned when the database cannot be opened,
	// pinged or migrated.
	ErrOpeningDatabase = errors.New("error opening database")
)
