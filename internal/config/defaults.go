package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress           = ":8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultBackendRequestTimeout = 15 * time.Second
	DefaultMaxRetries            = 3
	DefaultRetryBaseDelay        = time.Second
	DefaultProxyTimeout          = 10 * time.Second
	DefaultLogLevel              = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Backend: Backend{
			RequestTimeout: DefaultBackendRequestTimeout,
			MaxRetries:     Ptr(DefaultMaxRetries),
			RetryBaseDelay: DefaultRetryBaseDelay,
			EnvFile:        ".env",
		},
		Proxy: Proxy{
			AllowedOrigins: []string{"*"},
			Timeout:        DefaultProxyTimeout,
		},
		Navigation: Navigation{
			AdminRoles: []string{"admin"},
		},
	}
}
