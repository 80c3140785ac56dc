// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Source is a named key/value provider consulted by [Resolver].
type Source interface {
	// Name identifies the source in diagnostics (e.g. "injected", "process").
	Name() string
	// Lookup returns the value for key and whether it was present.
	Lookup(key string) (string, bool)
}

// MapSource is an in-process mapping keyed by exact name. It backs both the
// injected mapping and the grouped namespace object.
type MapSource struct {
	name   string
	values map[string]string
}

// NewMapSource copies values into a new named source.
func NewMapSource(name string, values map[string]string) *MapSource {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MapSource{name: name, values: copied}
}

func (m *MapSource) Name() string { return m.name }

func (m *MapSource) Lookup(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// EnvSource reads the process environment.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource returns a source backed by os.LookupEnv.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

func (e *EnvSource) Name() string { return "process" }

func (e *EnvSource) Lookup(key string) (string, bool) {
	return e.lookup(key)
}

// LoadNamespaceFile parses a dotenv-style file (KEY=VALUE per line, '#'
// comments, optional "export " prefix and surrounding quotes) into a
// namespace source. A missing file yields an empty source.
func LoadNamespaceFile(path string) (*MapSource, error) {
	if path == "" {
		return NewMapSource("namespace", nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewMapSource("namespace", nil), nil
		}
		return nil, fmt.Errorf("open namespace file: %w", err)
	}
	defer f.Close()

	values, err := parseNamespace(f)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrNamespaceFile, path, err)
	}

	return &MapSource{name: "namespace", values: values}, nil
}

func parseNamespace(r io.Reader) (map[string]string, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, err
	}
	for key := range values {
		if strings.TrimSpace(key) == "" {
			return nil, errors.New("empty key")
		}
	}
	return values, nil
}
