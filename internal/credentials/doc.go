// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials resolves backend connection credentials from an
// explicit, ordered list of named sources.
//
// A [Resolver] checks its sources in order and returns the first non-empty
// value. When a key carries a known prefix (for example "VITE_"), the
// de-prefixed key is retried against the sources that allow it. Absence is
// never an error at lookup level; [Resolver.Connection] is the one place
// where missing values become [ErrMissingConfiguration].
package credentials
