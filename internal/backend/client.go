// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/store"
	"github.com/MKhiriev/go-catalog-gateway/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	restPath = "/rest/v1/"
	authPath = "/auth/v1"
)

// Client is the handle to the catalog backend. It is safe for concurrent
// use once constructed.
type Client struct {
	http    *resty.Client
	baseURL string
	anonKey string
	keyRole string
	opts    ClientOptions

	auth   *Auth
	logger *logger.Logger
}

// NewClient validates conn and builds a client with the given profile.
// sessions may be nil, in which case sessions are kept in memory only.
func NewClient(conn models.Connection, opts ClientOptions, sessions store.SessionStore, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(conn.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	role, err := anonKeyRole(conn.AnonKey)
	if err != nil {
		return nil, err
	}

	if sessions == nil || !opts.Auth.PersistSession {
		sessions = store.NewMemorySessionStore()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeaders(opts.Headers).
		SetHeader("apikey", conn.AnonKey)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	c := &Client{
		http:    httpClient,
		baseURL: baseURL,
		anonKey: conn.AnonKey,
		keyRole: role,
		opts:    opts,
		logger:  log,
	}
	c.auth = newAuth(c, sessions, storageKey(baseURL))

	log.Debug().Str("url", baseURL).Str("key_role", role).Msg("backend client created")
	return c, nil
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// KeyRole returns the "role" claim of the anon key, or "" for non-JWT keys.
func (c *Client) KeyRole() string { return c.keyRole }

// Options returns the connection profile the client was built with.
func (c *Client) Options() ClientOptions { return c.opts }

// Auth returns the session subsystem.
func (c *Client) Auth() *Auth { return c.auth }

// Subscribe is the entry point for realtime resource subscriptions. The
// gateway never enables realtime, so it always fails.
func (c *Client) Subscribe(_ context.Context, resource string) error {
	if !c.opts.Realtime.Enabled {
		return fmt.Errorf("subscribe %q: %w", resource, ErrRealtimeDisabled)
	}
	return fmt.Errorf("subscribe %q: realtime transport is not available", resource)
}

// request returns a request carrying the current bearer token: the session
// access token when a session is active, the anon key otherwise.
func (c *Client) request(ctx context.Context) *resty.Request {
	token := c.anonKey
	if s, ok, err := c.auth.Session(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("session unavailable, falling back to anon key")
	} else if ok {
		token = s.AccessToken
	}

	return c.http.R().
		SetContext(ctx).
		SetAuthToken(token)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("url must include http(s) scheme and host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// anonKeyRole extracts the role claim from a JWT anon key without verifying
// its signature. Opaque (non-JWT) keys are accepted with an empty role.
func anonKeyRole(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidAnonKey)
	}
	if strings.Count(key, ".") != 2 {
		return "", nil
	}

	token, _, err := jwt.NewParser().ParseUnverified(key, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAnonKey, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid claims", ErrInvalidAnonKey)
	}

	role, _ := claims["role"].(string)
	return role, nil
}

// storageKey derives the session storage key from the project reference,
// the first label of the backend host.
func storageKey(baseURL string) string {
	ref := "local"
	if u, err := url.Parse(baseURL); err == nil {
		host := u.Hostname()
		if i := strings.IndexByte(host, '.'); i > 0 {
			ref = host[:i]
		} else if host != "" {
			ref = host
		}
	}
	return "sb-" + ref + "-auth-token"
}
