package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBackendConfigs indicates invalid backend client or retry
	// settings (for example, negative retries or a zero base delay).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidProxyConfigs indicates invalid webhook proxy settings
	// (for example, a target that is not an absolute http(s) URL).
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
)
