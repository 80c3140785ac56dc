// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeNamespaceFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── Lookup ────────────────────────────────────────────────────────────────────

func TestLookup_PriorityOrder(t *testing.T) {
	t.Setenv("VITE_SUPABASE_URL", "https://process.example")

	tests := []struct {
		name       string
		injected   map[string]string
		namespace  map[string]string
		wantValue  string
		wantSource string
	}{
		{
			name:       "injected wins over everything",
			injected:   map[string]string{"VITE_SUPABASE_URL": "https://injected.example"},
			namespace:  map[string]string{"VITE_SUPABASE_URL": "https://namespace.example"},
			wantValue:  "https://injected.example",
			wantSource: "injected",
		},
		{
			name:       "namespace wins over process",
			namespace:  map[string]string{"VITE_SUPABASE_URL": "https://namespace.example"},
			wantValue:  "https://namespace.example",
			wantSource: "namespace",
		},
		{
			name:       "process when nothing else",
			wantValue:  "https://process.example",
			wantSource: "process",
		},
		{
			name:       "empty injected value is skipped",
			injected:   map[string]string{"VITE_SUPABASE_URL": ""},
			wantValue:  "https://process.example",
			wantSource: "process",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewDefaultResolver(tt.injected, NewMapSource("namespace", tt.namespace))

			v, src, ok := r.LookupSource("VITE_SUPABASE_URL")
			require.True(t, ok)
			assert.Equal(t, tt.wantValue, v)
			assert.Equal(t, tt.wantSource, src)
		})
	}
}

func TestLookup_DePrefixedFallback(t *testing.T) {
	t.Setenv("SUPABASE_ANON_KEY", "process-key")

	r := NewDefaultResolver(nil, nil)
	v, src, ok := r.LookupSource("VITE_SUPABASE_ANON_KEY")

	require.True(t, ok)
	assert.Equal(t, "process-key", v)
	assert.Equal(t, "process", src)
}

func TestLookup_NamespaceFallbackBeatsProcessFallback(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://process.example")

	r := NewDefaultResolver(nil, NewMapSource("namespace", map[string]string{
		"SUPABASE_URL": "https://namespace.example",
	}))

	v, ok := r.Lookup("VITE_SUPABASE_URL")
	require.True(t, ok)
	assert.Equal(t, "https://namespace.example", v)
}

func TestLookup_InjectedIsNotUsedForFallback(t *testing.T) {
	r := NewDefaultResolver(map[string]string{"MY_UNIQUE_TEST_KEY": "injected"}, nil)

	_, ok := r.Lookup("VITE_MY_UNIQUE_TEST_KEY")
	assert.False(t, ok)
}

func TestLookup_ExactKeyBeatsFallbackInAnySource(t *testing.T) {
	t.Setenv("VITE_MY_UNIQUE_TEST_KEY", "exact")

	r := NewDefaultResolver(nil, NewMapSource("namespace", map[string]string{
		"MY_UNIQUE_TEST_KEY": "stripped",
	}))

	v, ok := r.Lookup("VITE_MY_UNIQUE_TEST_KEY")
	require.True(t, ok)
	assert.Equal(t, "exact", v)
}

func TestLookup_NotFound(t *testing.T) {
	r := NewDefaultResolver(nil, nil)

	v, ok := r.Lookup("VITE_SURELY_NOT_SET_ANYWHERE_42")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestLookup_KeyEqualToPrefixIsNotStripped(t *testing.T) {
	r := NewResolver(WithFallbackSource(NewMapSource("ns", map[string]string{"": "empty-key"})))

	_, ok := r.Lookup("VITE_")
	assert.False(t, ok)
}

func TestLookup_Deterministic(t *testing.T) {
	r := NewDefaultResolver(map[string]string{"K": "v"}, nil)
	for i := 0; i < 10; i++ {
		v, ok := r.Lookup("K")
		require.True(t, ok)
		assert.Equal(t, "v", v)
	}
}

func TestNewMapSource_CopiesInput(t *testing.T) {
	in := map[string]string{"K": "before"}
	s := NewMapSource("injected", in)
	in["K"] = "after"

	v, ok := s.Lookup("K")
	require.True(t, ok)
	assert.Equal(t, "before", v)
}

func TestWithPrefixes_CustomPrefix(t *testing.T) {
	r := NewResolver(
		WithFallbackSource(NewMapSource("ns", map[string]string{"URL": "https://x"})),
		WithPrefixes("PUBLIC_"),
	)

	v, ok := r.Lookup("PUBLIC_URL")
	require.True(t, ok)
	assert.Equal(t, "https://x", v)

	_, ok = r.Lookup("VITE_URL")
	assert.False(t, ok)
}

func TestSources_Order(t *testing.T) {
	r := NewDefaultResolver(nil, nil)
	assert.Equal(t, []string{"injected", "namespace", "process"}, r.Sources())
}

// ── Connection ────────────────────────────────────────────────────────────────

func TestConnection_Resolved(t *testing.T) {
	r := NewDefaultResolver(map[string]string{
		KeyBackendURL:     " https://abc.supabase.co ",
		KeyBackendAnonKey: "anon",
	}, nil)

	conn, err := r.Connection()
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co", conn.URL)
	assert.Equal(t, "anon", conn.AnonKey)
}

func TestConnection_MissingKeys(t *testing.T) {
	tests := []struct {
		name        string
		injected    map[string]string
		wantMissing []string
	}{
		{
			name:        "both missing",
			wantMissing: []string{KeyBackendURL, KeyBackendAnonKey},
		},
		{
			name:        "url missing",
			injected:    map[string]string{KeyBackendAnonKey: "anon"},
			wantMissing: []string{KeyBackendURL},
		},
		{
			name:        "key missing",
			injected:    map[string]string{KeyBackendURL: "https://abc.supabase.co"},
			wantMissing: []string{KeyBackendAnonKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(WithSource(NewMapSource("injected", tt.injected)))

			_, err := r.Connection()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingConfiguration)
			for _, k := range tt.wantMissing {
				assert.Contains(t, err.Error(), k)
			}
		})
	}
}

// ── LoadNamespaceFile ─────────────────────────────────────────────────────────

func TestLoadNamespaceFile_Parses(t *testing.T) {
	path := writeNamespaceFile(t, `
# backend
export VITE_SUPABASE_URL="https://abc.supabase.co"
SUPABASE_ANON_KEY='anon-key'
EMPTY=
`)

	s, err := LoadNamespaceFile(path)
	require.NoError(t, err)
	assert.Equal(t, "namespace", s.Name())

	v, ok := s.Lookup("VITE_SUPABASE_URL")
	require.True(t, ok)
	assert.Equal(t, "https://abc.supabase.co", v)

	v, ok = s.Lookup("SUPABASE_ANON_KEY")
	require.True(t, ok)
	assert.Equal(t, "anon-key", v)

	v, ok = s.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestLoadNamespaceFile_MissingFileIsEmpty(t *testing.T) {
	s, err := LoadNamespaceFile(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)

	_, ok := s.Lookup("ANY")
	assert.False(t, ok)
}

func TestLoadNamespaceFile_EmptyPath(t *testing.T) {
	s, err := LoadNamespaceFile("")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestLoadNamespaceFile_Malformed(t *testing.T) {
	path := writeNamespaceFile(t, "VITE_SUPABASE_URL=\"https://abc.supabase.co\n")

	_, err := LoadNamespaceFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNamespaceFile)
}

func TestLoadNamespaceFile_EmptyKey(t *testing.T) {
	path := writeNamespaceFile(t, "=value\n")

	_, err := LoadNamespaceFile(path)
	assert.ErrorIs(t, err, ErrNamespaceFile)
}

func TestRealEnvSource_ReadsProcess(t *testing.T) {
	t.Setenv("CREDENTIALS_TEST_ENV_SOURCE", "yes")

	v, ok := NewEnvSource().Lookup("CREDENTIALS_TEST_ENV_SOURCE")
	require.True(t, ok)
	assert.Equal(t, "yes", v)
}
