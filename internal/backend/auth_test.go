// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog-gateway/internal/store"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func TestAuth_Session_RestoresFromStore(t *testing.T) {
	sessions := store.NewMemorySessionStore()
	persisted := models.Session{AccessToken: "stored", ExpiresAt: fixedNow.Add(time.Hour)}
	require.NoError(t, sessions.Save(context.Background(), "sb-demo-auth-token", persisted))

	c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), sessions)
	c.Auth().now = func() time.Time { return fixedNow }

	got, ok, err := c.Auth().Session(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, persisted, got)
}

func TestAuth_Session_None(t *testing.T) {
	c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)

	_, ok, err := c.Auth().Session(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuth_Session_AutoRefresh(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])

		_, _ = w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","token_type":"bearer","expires_in":3600,"user":{"id":"user-1"}}`))
	}))
	defer srv.Close()

	sessions := store.NewMemorySessionStore()
	c := newTestClient(t, srv.URL, DefaultClientOptions(), sessions)
	a := c.Auth()
	a.now = func() time.Time { return fixedNow }

	require.NoError(t, sessions.Save(context.Background(), a.StorageKey(), models.Session{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresAt:    fixedNow.Add(-time.Minute),
	}))

	got, ok, err := a.Session(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new-access", got.AccessToken)
	assert.Equal(t, "new-refresh", got.RefreshToken)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, fixedNow.Add(time.Hour), got.ExpiresAt)
	assert.EqualValues(t, 1, calls.Load())

	stored, err := sessions.Load(context.Background(), a.StorageKey())
	require.NoError(t, err)
	assert.Equal(t, "new-access", stored.AccessToken)
}

func TestAuth_Session_ExpiredWithoutAutoRefresh(t *testing.T) {
	opts := DefaultClientOptions()
	opts.Auth.AutoRefreshToken = false

	c := newTestClient(t, "https://demo.supabase.co", opts, nil)
	a := c.Auth()
	a.now = func() time.Time { return fixedNow }
	require.NoError(t, a.SetSession(context.Background(), models.Session{
		AccessToken:  "a",
		RefreshToken: "r",
		ExpiresAt:    fixedNow.Add(10 * time.Second),
	}))

	_, ok, err := a.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "token inside refresh leeway is treated as expired")
}

func TestAuth_Refresh_Errors(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)
		_, err := c.Auth().Refresh(context.Background())
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("no refresh token", func(t *testing.T) {
		c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)
		require.NoError(t, c.Auth().SetSession(context.Background(), models.Session{AccessToken: "a"}))
		_, err := c.Auth().Refresh(context.Background())
		assert.ErrorIs(t, err, ErrNoRefreshToken)
	})

	t.Run("backend rejects", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL, DefaultClientOptions(), nil)
		require.NoError(t, c.Auth().SetSession(context.Background(), models.Session{AccessToken: "a", RefreshToken: "r"}))
		_, err := c.Auth().Refresh(context.Background())
		assert.ErrorIs(t, err, ErrBadRequest)
	})
}

func TestAuth_SetSession_RejectsEmpty(t *testing.T) {
	c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)
	assert.ErrorIs(t, c.Auth().SetSession(context.Background(), models.Session{}), ErrNoSession)
}

func TestAuth_SignOut(t *testing.T) {
	var logoutAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		logoutAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sessions := store.NewMemorySessionStore()
	c := newTestClient(t, srv.URL, DefaultClientOptions(), sessions)
	a := c.Auth()
	require.NoError(t, a.SetSession(context.Background(), models.Session{AccessToken: "user-token"}))

	require.NoError(t, a.SignOut(context.Background()))
	assert.Equal(t, "Bearer user-token", logoutAuth)

	_, ok, err := a.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = sessions.Load(context.Background(), a.StorageKey())
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestAuth_SignOut_ClearsLocallyOnRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, DefaultClientOptions(), nil)
	a := c.Auth()
	require.NoError(t, a.SetSession(context.Background(), models.Session{AccessToken: "user-token"}))

	assert.ErrorIs(t, a.SignOut(context.Background()), ErrServerError)

	_, ok, err := a.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuth_ExchangeURL(t *testing.T) {
	t.Run("fragment", func(t *testing.T) {
		c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)
		a := c.Auth()
		a.now = func() time.Time { return fixedNow }

		u, err := url.Parse("https://app.example/callback#access_token=tok&refresh_token=ref&expires_in=60&token_type=bearer")
		require.NoError(t, err)

		got, err := a.ExchangeURL(context.Background(), u)
		require.NoError(t, err)
		assert.Equal(t, "tok", got.AccessToken)
		assert.Equal(t, "ref", got.RefreshToken)
		assert.Equal(t, fixedNow.Add(time.Minute), got.ExpiresAt)

		current, ok, err := a.Session(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, got, current)
	})

	t.Run("no token", func(t *testing.T) {
		c := newTestClient(t, "https://demo.supabase.co", DefaultClientOptions(), nil)
		u, _ := url.Parse("https://app.example/callback?code=abc")
		_, err := c.Auth().ExchangeURL(context.Background(), u)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("detection disabled", func(t *testing.T) {
		opts := DefaultClientOptions()
		opts.Auth.DetectSessionInURL = false
		c := newTestClient(t, "https://demo.supabase.co", opts, nil)
		u, _ := url.Parse("https://app.example/callback#access_token=tok")
		_, err := c.Auth().ExchangeURL(context.Background(), u)
		assert.ErrorIs(t, err, ErrSessionDetectionDisabled)
	})
}

func TestSessionFromURL(t *testing.T) {
	exp := fixedNow.Add(2 * time.Hour)
	token := signedToken(t, jwt.MapClaims{"sub": "user-42", "exp": exp.Unix()})

	t.Run("query fallback with jwt claims", func(t *testing.T) {
		u, _ := url.Parse("https://app.example/cb?access_token=" + token)
		s, ok := SessionFromURL(u, fixedNow)
		require.True(t, ok)
		assert.Equal(t, "user-42", s.UserID)
		assert.Equal(t, "bearer", s.TokenType)
		assert.Equal(t, exp, s.ExpiresAt)
	})

	t.Run("absolute expiry wins", func(t *testing.T) {
		u, _ := url.Parse("https://app.example/cb#access_token=tok&expires_at=1800000000&expires_in=60")
		s, ok := SessionFromURL(u, fixedNow)
		require.True(t, ok)
		assert.Equal(t, time.Unix(1800000000, 0).UTC(), s.ExpiresAt)
	})

	t.Run("opaque token has no expiry", func(t *testing.T) {
		u, _ := url.Parse("https://app.example/cb#access_token=opaque")
		s, ok := SessionFromURL(u, fixedNow)
		require.True(t, ok)
		assert.True(t, s.ExpiresAt.IsZero())
		assert.Empty(t, s.UserID)
	})

	t.Run("nil url", func(t *testing.T) {
		_, ok := SessionFromURL(nil, fixedNow)
		assert.False(t, ok)
	})
}
