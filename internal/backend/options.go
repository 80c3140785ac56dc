// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import "time"

// AuthOptions controls the session subsystem.
type AuthOptions struct {
	// PersistSession saves the session to the session store and restores it
	// on first use.
	PersistSession bool
	// AutoRefreshToken refreshes an expired access token on access.
	AutoRefreshToken bool
	// DetectSessionInURL allows [Auth.ExchangeURL] to pick a session out of
	// a redirect URL.
	DetectSessionInURL bool
	// RefreshLeeway treats tokens expiring within this window as expired.
	RefreshLeeway time.Duration
}

// RealtimeOptions controls streaming subscriptions. The gateway has no
// streaming requirement, so the default profile keeps it off.
type RealtimeOptions struct {
	Enabled bool
}

// ClientOptions is the connection profile of a [Client].
type ClientOptions struct {
	Auth     AuthOptions
	Realtime RealtimeOptions
	// Headers are sent with every request.
	Headers map[string]string
	// Timeout is the HTTP client timeout. Zero means no timeout.
	Timeout time.Duration
}

// DefaultClientOptions returns the fixed profile used by the bootstrap.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Auth: AuthOptions{
			PersistSession:     true,
			AutoRefreshToken:   true,
			DetectSessionInURL: true,
			RefreshLeeway:      30 * time.Second,
		},
		Realtime: RealtimeOptions{Enabled: false},
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
	}
}
