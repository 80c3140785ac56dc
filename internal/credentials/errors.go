// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import "errors"

var (
	// ErrMissingConfiguration is returned by [Resolver.Connection] when the
	// backend URL or the anon key cannot be resolved from any source.
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrNamespaceFile is returned when a namespace file exists but cannot be
	// parsed.
	ErrNamespaceFile = errors.New("invalid namespace file")
)
