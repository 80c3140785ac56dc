// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-catalog-gateway/internal/store"
	"github.com/MKhiriev/go-catalog-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// Auth keeps the current session of a [Client].
type Auth struct {
	client   *Client
	sessions store.SessionStore
	key      string
	now      func() time.Time

	mu       sync.Mutex
	session  *models.Session
	restored bool
}

func newAuth(c *Client, sessions store.SessionStore, key string) *Auth {
	return &Auth{client: c, sessions: sessions, key: key, now: time.Now}
}

// StorageKey is the key the session is persisted under.
func (a *Auth) StorageKey() string { return a.key }

// Session returns the current session. The boolean is false when no session
// is active. With PersistSession the stored session is restored on first
// call; with AutoRefreshToken an expired session is refreshed first.
func (a *Auth) Session(ctx context.Context) (models.Session, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.restoreLocked(ctx); err != nil {
		return models.Session{}, false, err
	}
	if a.session == nil {
		return models.Session{}, false, nil
	}

	opts := a.client.opts.Auth
	if a.session.Expired(a.now(), opts.RefreshLeeway) {
		if !opts.AutoRefreshToken || a.session.RefreshToken == "" {
			return models.Session{}, false, nil
		}
		refreshed, err := a.refresh(ctx, a.session.RefreshToken)
		if err != nil {
			return models.Session{}, false, err
		}
		if err = a.storeLocked(ctx, refreshed); err != nil {
			return models.Session{}, false, err
		}
	}

	return *a.session, true, nil
}

// SetSession replaces the current session and persists it when enabled.
func (a *Auth) SetSession(ctx context.Context, s models.Session) error {
	if !s.Valid() {
		return fmt.Errorf("set session: %w", ErrNoSession)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.restored = true
	return a.storeLocked(ctx, s)
}

// Refresh exchanges the current refresh token for a new session.
func (a *Auth) Refresh(ctx context.Context) (models.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.restoreLocked(ctx); err != nil {
		return models.Session{}, err
	}
	if a.session == nil {
		return models.Session{}, ErrNoSession
	}
	if a.session.RefreshToken == "" {
		return models.Session{}, ErrNoRefreshToken
	}

	refreshed, err := a.refresh(ctx, a.session.RefreshToken)
	if err != nil {
		return models.Session{}, err
	}
	if err = a.storeLocked(ctx, refreshed); err != nil {
		return models.Session{}, err
	}
	return refreshed, nil
}

// SignOut revokes the session on the backend and forgets it locally. The
// local session is cleared even when the remote call fails.
func (a *Auth) SignOut(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var remoteErr error
	if a.session != nil {
		resp, err := a.client.http.R().
			SetContext(ctx).
			SetAuthToken(a.session.AccessToken).
			Post(authPath + "/logout")
		if err != nil {
			remoteErr = fmt.Errorf("logout request: %w", err)
		} else {
			remoteErr = mapHTTPError(resp)
		}
	}

	a.session = nil
	a.restored = true
	if a.client.opts.Auth.PersistSession {
		if err := a.sessions.Delete(ctx, a.key); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			return errors.Join(remoteErr, fmt.Errorf("delete stored session: %w", err))
		}
	}

	return remoteErr
}

// ExchangeURL detects a session in a redirect URL and makes it current.
func (a *Auth) ExchangeURL(ctx context.Context, redirect *url.URL) (models.Session, error) {
	if !a.client.opts.Auth.DetectSessionInURL {
		return models.Session{}, ErrSessionDetectionDisabled
	}

	s, ok := SessionFromURL(redirect, a.now())
	if !ok {
		return models.Session{}, fmt.Errorf("exchange url: %w", ErrNoSession)
	}
	if err := a.SetSession(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *Auth) restoreLocked(ctx context.Context) error {
	if a.restored {
		return nil
	}
	if !a.client.opts.Auth.PersistSession {
		a.restored = true
		return nil
	}

	s, err := a.sessions.Load(ctx, a.key)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			a.restored = true
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	a.session = &s
	a.restored = true
	return nil
}

func (a *Auth) storeLocked(ctx context.Context, s models.Session) error {
	a.session = &s
	if !a.client.opts.Auth.PersistSession {
		return nil
	}
	if err := a.sessions.Save(ctx, a.key, s); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	User         struct {
		ID string `json:"id"`
	} `json:"user"`
}

func (a *Auth) refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	resp, err := a.client.http.R().
		SetContext(ctx).
		SetAuthToken(a.client.anonKey).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post(authPath + "/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, fmt.Errorf("refresh session: %w", err)
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.Session{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if tr.AccessToken == "" {
		return models.Session{}, fmt.Errorf("refresh session: %w", ErrNoSession)
	}

	s := models.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresAt:    expiresAt(a.now(), tr.ExpiresAt, tr.ExpiresIn, tr.AccessToken),
		UserID:       tr.User.ID,
	}
	if s.UserID == "" {
		s.UserID = tokenSubject(tr.AccessToken)
	}
	return s, nil
}

// SessionFromURL extracts a session from the fragment (preferred) or query
// of a redirect URL. It returns false when no access token is present.
func SessionFromURL(u *url.URL, now time.Time) (models.Session, bool) {
	if u == nil {
		return models.Session{}, false
	}

	values, err := url.ParseQuery(u.Fragment)
	if err != nil || values.Get("access_token") == "" {
		values = u.Query()
	}

	access := values.Get("access_token")
	if access == "" {
		return models.Session{}, false
	}

	expAt, _ := strconv.ParseInt(values.Get("expires_at"), 10, 64)
	expIn, _ := strconv.ParseInt(values.Get("expires_in"), 10, 64)

	tokenType := values.Get("token_type")
	if tokenType == "" {
		tokenType = "bearer"
	}

	return models.Session{
		AccessToken:  access,
		RefreshToken: values.Get("refresh_token"),
		TokenType:    tokenType,
		ExpiresAt:    expiresAt(now, expAt, expIn, access),
		UserID:       tokenSubject(access),
	}, true
}

// expiresAt picks the expiry from an absolute unix timestamp, then a
// relative lifetime, then the token's own exp claim.
func expiresAt(now time.Time, unixAt, in int64, accessToken string) time.Time {
	switch {
	case unixAt > 0:
		return time.Unix(unixAt, 0).UTC()
	case in > 0:
		return now.Add(time.Duration(in) * time.Second).UTC()
	}

	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.UTC()
}

func tokenSubject(accessToken string) string {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	sub, _ := token.Claims.GetSubject()
	return sub
}
