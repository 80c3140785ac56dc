// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the catalog
// gateway. It is populated by merging environment variables, command-line
// flags, an optional JSON file and finally built-in defaults.
//
// Backend credentials (URL and anon key) are intentionally absent: they are
// resolved through the credentials package so that their lookup order stays
// explicit.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Backend holds the outbound backend client and retry settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the session persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Proxy holds the webhook proxy targets and CORS settings.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Navigation holds role settings for navigation menu visibility.
	Navigation Navigation `envPrefix:"NAVIGATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds client and retry settings for the catalog backend.
type Backend struct {
	// RequestTimeout is the HTTP client timeout for backend calls.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is the number of retries after the first failed read. Nil
	// means unset; an explicit 0 disables retries.
	// Env: BACKEND_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`

	// RetryBaseDelay is multiplied by the retry number to get the delay
	// before that retry.
	// Env: BACKEND_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// EnvFile is a dotenv-style file loaded as the credentials namespace.
	// Env: BACKEND_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// WarmUp builds the shared client at startup instead of on first use.
	// Env: BACKEND_WARM_UP
	WarmUp bool `env:"WARM_UP"`
}

// Retries returns MaxRetries, or [DefaultMaxRetries] when it is unset.
func (b Backend) Retries() int {
	if b.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *b.MaxRetries
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// Session holds the auth session store settings.
	Session Session `envPrefix:"SESSION_"`
}

// Session holds connection settings for the session store.
type Session struct {
	// DSN selects the store: a "postgres://" URI uses PostgreSQL, any other
	// non-empty value is a SQLite file path, empty keeps sessions in memory.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Proxy holds webhook proxy settings.
type Proxy struct {
	// Webhooks maps a webhook name to its upstream URL.
	// Env: PROXY_WEBHOOKS="orders|https://hooks.example/orders,contact|https://hooks.example/contact"
	Webhooks map[string]string `env:"WEBHOOKS" envKeyValSeparator:"|"`

	// AllowedOrigins lists origins allowed by CORS. "*" allows any.
	// Env: PROXY_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`

	// Timeout bounds a single forwarded webhook call.
	// Env: PROXY_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Navigation holds the roles allowed to see the navigation menu.
type Navigation struct {
	// AdminRoles lists roles (case-insensitive) that see the menu.
	// Env: NAVIGATION_ADMIN_ROLES
	AdminRoles []string `env:"ADMIN_ROLES"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
