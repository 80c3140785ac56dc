// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap owns the shared backend client.
//
// A [Bootstrap] resolves the connection config on first use, builds a
// [backend.Client] with the fixed default profile and probes it before
// handing it out. Concurrent callers share a single in-flight construction.
// A failed construction is never cached: the next call starts over.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/store"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

// ErrProbeFailed is returned when a freshly built client fails its
// connectivity probe.
var ErrProbeFailed = errors.New("backend connectivity probe failed")

// ConnectionResolver resolves the backend connection config.
type ConnectionResolver interface {
	Connection() (models.Connection, error)
}

// ProbeFunc checks that a new client can reach the backend.
type ProbeFunc func(ctx context.Context, c *backend.Client) error

// Option configures a [Bootstrap].
type Option func(*Bootstrap)

// WithProbe replaces [ProbeClient].
func WithProbe(p ProbeFunc) Option {
	return func(b *Bootstrap) { b.probe = p }
}

// WithTimeout sets the HTTP timeout of the built client.
func WithTimeout(d time.Duration) Option {
	return func(b *Bootstrap) { b.profile.Timeout = d }
}

const constructKey = "client"

// Bootstrap lazily constructs and shares one backend client.
type Bootstrap struct {
	resolver ConnectionResolver
	sessions store.SessionStore
	profile  backend.ClientOptions
	probe    ProbeFunc
	logger   *logger.Logger

	group singleflight.Group

	mu      sync.RWMutex
	client  *backend.Client
	state   State
	lastErr error
}

// New returns a bootstrap in the [StateUninitialized] state. No work is
// done until the first [Bootstrap.GetClient] call.
func New(resolver ConnectionResolver, sessions store.SessionStore, log *logger.Logger, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		resolver: resolver,
		sessions: sessions,
		profile:  backend.DefaultClientOptions(),
		probe:    ProbeClient,
		logger:   log.WithComponent("bootstrap"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetClient returns the shared client, constructing and probing it if no
// ready client exists. Missing configuration fails before any network call
// with an error wrapping credentials.ErrMissingConfiguration. A probe
// failure is returned wrapped in [ErrProbeFailed] to the constructing call
// and every caller waiting on it.
//
// The construction is detached from ctx: a caller whose ctx ends stops
// waiting and gets ctx.Err(), while the construction keeps running for the
// other callers.
func (b *Bootstrap) GetClient(ctx context.Context) (*backend.Client, error) {
	if c := b.ready(); c != nil {
		return c, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flight := b.group.DoChan(constructKey, func() (any, error) {
		// a previous flight may have finished between ready() and DoChan
		if c := b.ready(); c != nil {
			return c, nil
		}
		return b.construct(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		b.logger.Debug().Err(ctx.Err()).Str("func", "Bootstrap.GetClient").Msg("stopped waiting for client construction")
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			b.logger.Debug().Str("func", "Bootstrap.GetClient").Msg("joined in-flight client construction")
		}
		return res.Val.(*backend.Client), nil
	}
}

// State reports the lifecycle state of the client.
func (b *Bootstrap) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Err returns the error of the last failed construction, or nil.
func (b *Bootstrap) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastErr
}

func (b *Bootstrap) ready() *backend.Client {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.client
}

func (b *Bootstrap) construct(ctx context.Context) (*backend.Client, error) {
	b.setState(StateInitializing, nil)

	conn, err := b.resolver.Connection()
	if err != nil {
		return nil, b.fail(fmt.Errorf("resolve connection: %w", err))
	}

	client, err := backend.NewClient(conn, b.profile, b.sessions, b.logger)
	if err != nil {
		return nil, b.fail(fmt.Errorf("create backend client: %w", err))
	}

	if err = b.probe(ctx, client); err != nil {
		return nil, b.fail(fmt.Errorf("%w: %w", ErrProbeFailed, err))
	}

	b.mu.Lock()
	b.client = client
	b.state = StateReady
	b.lastErr = nil
	b.mu.Unlock()

	b.logger.Info().Str("func", "Bootstrap.construct").Str("url", client.BaseURL()).Msg("backend client ready")
	return client, nil
}

func (b *Bootstrap) fail(err error) error {
	state := StateFailed
	if errors.Is(err, context.Canceled) {
		state = StateUninitialized
	}
	b.setState(state, err)
	b.logger.Err(err).Str("func", "Bootstrap.construct").Msg("backend client construction failed")
	return err
}

func (b *Bootstrap) setState(s State, err error) {
	b.mu.Lock()
	b.state = s
	b.lastErr = err
	b.mu.Unlock()
}
