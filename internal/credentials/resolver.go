// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

// Keys of the two required backend credentials.
const (
	KeyBackendURL     = "VITE_SUPABASE_URL"
	KeyBackendAnonKey = "VITE_SUPABASE_ANON_KEY"
)

// DefaultPrefixes lists the key prefixes stripped on fallback lookups.
var DefaultPrefixes = []string{"VITE_"}

type entry struct {
	source Source
	// fallback marks sources consulted again with the de-prefixed key.
	fallback bool
}

// Resolver looks keys up across an ordered list of sources.
// It holds no mutable state after construction and is safe for concurrent use.
type Resolver struct {
	entries  []entry
	prefixes []string
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithSource appends a source that is consulted only with the exact key.
func WithSource(s Source) Option {
	return func(r *Resolver) {
		r.entries = append(r.entries, entry{source: s})
	}
}

// WithFallbackSource appends a source that is consulted with the exact key
// and again with the de-prefixed key.
func WithFallbackSource(s Source) Option {
	return func(r *Resolver) {
		r.entries = append(r.entries, entry{source: s, fallback: true})
	}
}

// WithPrefixes replaces the list of strippable key prefixes.
func WithPrefixes(prefixes ...string) Option {
	return func(r *Resolver) {
		r.prefixes = append([]string(nil), prefixes...)
	}
}

// NewResolver builds a resolver from the given options. Sources are
// consulted in the order the options are applied.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{prefixes: DefaultPrefixes}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultResolver wires the standard priority order:
//  1. injected mapping (exact key only);
//  2. namespace object;
//  3. process environment.
//
// Sources 2 and 3 are retried with the de-prefixed key.
func NewDefaultResolver(injected map[string]string, namespace Source) *Resolver {
	if namespace == nil {
		namespace = NewMapSource("namespace", nil)
	}
	return NewResolver(
		WithSource(NewMapSource("injected", injected)),
		WithFallbackSource(namespace),
		WithFallbackSource(NewEnvSource()),
	)
}

// Sources returns the source names in lookup order.
func (r *Resolver) Sources() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.source.Name())
	}
	return names
}

// Lookup returns the first non-empty value for key, or ("", false).
func (r *Resolver) Lookup(key string) (string, bool) {
	v, _, ok := r.LookupSource(key)
	return v, ok
}

// LookupSource is like Lookup but also reports which source matched.
func (r *Resolver) LookupSource(key string) (value, source string, ok bool) {
	for _, e := range r.entries {
		if v, found := e.source.Lookup(key); found && v != "" {
			return v, e.source.Name(), true
		}
	}

	stripped, hasPrefix := r.stripPrefix(key)
	if !hasPrefix {
		return "", "", false
	}

	for _, e := range r.entries {
		if !e.fallback {
			continue
		}
		if v, found := e.source.Lookup(stripped); found && v != "" {
			return v, e.source.Name(), true
		}
	}

	return "", "", false
}

func (r *Resolver) stripPrefix(key string) (string, bool) {
	for _, p := range r.prefixes {
		if p != "" && strings.HasPrefix(key, p) && len(key) > len(p) {
			return strings.TrimPrefix(key, p), true
		}
	}
	return "", false
}

// Connection resolves the backend URL and anon key. Either missing value
// yields an error wrapping [ErrMissingConfiguration] that names the keys.
func (r *Resolver) Connection() (models.Connection, error) {
	url, okURL := r.Lookup(KeyBackendURL)
	key, okKey := r.Lookup(KeyBackendAnonKey)

	var missing []string
	if !okURL {
		missing = append(missing, KeyBackendURL)
	}
	if !okKey {
		missing = append(missing, KeyBackendAnonKey)
	}
	if len(missing) > 0 {
		return models.Connection{}, fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return models.Connection{URL: strings.TrimSpace(url), AnonKey: strings.TrimSpace(key)}, nil
}
