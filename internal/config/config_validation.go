// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Backend.Retries() < 0 {
		return fmt.Errorf("%w: max retries must not be negative", ErrInvalidBackendConfigs)
	}
	if cfg.Backend.RetryBaseDelay < 0 || cfg.Backend.RequestTimeout < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidBackendConfigs)
	}

	for name, target := range cfg.Proxy.Webhooks {
		u, err := url.Parse(target)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: webhook %q has invalid target %q", ErrInvalidProxyConfigs, name, target)
		}
	}

	return nil
}
