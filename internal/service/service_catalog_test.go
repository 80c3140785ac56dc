// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/credentials"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/mock"
	"github.com/MKhiriev/go-catalog-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultBackendCfg = config.Backend{MaxRetries: config.Ptr(3), RetryBaseDelay: time.Second}

// recordingSleep records requested delays without waiting.
type recordingSleep struct {
	delays []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return ctx.Err()
}

func testClient(t *testing.T) *backend.Client {
	t.Helper()
	c, err := backend.NewClient(models.Connection{URL: "https://demo.supabase.co", AnonKey: "anon"},
		backend.DefaultClientOptions(), nil, logger.Nop())
	require.NoError(t, err)
	return c
}

func rows(n int) []models.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{
			ID:        models.RowID(strconv.Itoa(n - i)),
			Name:      fmt.Sprintf("product-%d", n-i),
			Category:  "bebidas",
			CreatedAt: base.Add(time.Duration(n-i) * time.Hour),
		}
	}
	return out
}

type catalogFixture struct {
	clients *mock.MockClientProvider
	reader  *mock.MockProductReader
	sleep   *recordingSleep
	svc     CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &catalogFixture{
		clients: mock.NewMockClientProvider(ctrl),
		reader:  mock.NewMockProductReader(ctrl),
		sleep:   &recordingSleep{},
	}
	f.svc = NewCatalogService(f.clients, f.reader, defaultBackendCfg, f.sleep.sleep, logger.Nop())
	return f
}

func TestLoadCollection_RetriesUntilSuccess(t *testing.T) {
	expectedDelays := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}

	for failures := 0; failures <= 3; failures++ {
		t.Run(fmt.Sprintf("%d failures", failures), func(t *testing.T) {
			f := newCatalogFixture(t)
			client := testClient(t)
			ctx := context.Background()

			f.clients.EXPECT().GetClient(ctx).Return(client, nil).Times(1)

			calls := make([]any, 0, failures+1)
			for i := 0; i < failures; i++ {
				calls = append(calls, f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, errors.New("timeout")))
			}
			calls = append(calls, f.reader.EXPECT().ReadProducts(ctx, client).Return(rows(5), nil))
			gomock.InOrder(calls...)

			got, err := f.svc.LoadCollection(ctx)

			require.NoError(t, err)
			assert.Equal(t, rows(5), got)
			if failures == 0 {
				assert.Empty(t, f.sleep.delays)
			} else {
				assert.Equal(t, expectedDelays[:failures], f.sleep.delays)
			}
		})
	}
}

func TestLoadCollection_FailsTwiceThenReturnsFiveRowsNewestFirst(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx := context.Background()

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	gomock.InOrder(
		f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, errors.New("attempt 1")),
		f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, errors.New("attempt 2")),
		f.reader.EXPECT().ReadProducts(ctx, client).Return(rows(5), nil),
	)

	got, err := f.svc.LoadCollection(ctx)

	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt), "rows keep newest-first order")
	}
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, f.sleep.delays)
}

func TestLoadCollection_ExhaustedReturnsEmpty(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx := context.Background()

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, errors.New("unreachable")).Times(4)

	got, err := f.svc.LoadCollection(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, f.sleep.delays)
}

func TestLoadCollectionStrict_ExhaustedReturnsError(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx := context.Background()
	lastErr := errors.New("attempt 4")

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	gomock.InOrder(
		f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, errors.New("attempt 1")).Times(3),
		f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, lastErr),
	)

	got, err := f.svc.LoadCollectionStrict(ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, lastErr)
	assert.Contains(t, err.Error(), "after 4 attempts")
}

func TestLoadCollection_EmptyReadIsDistinctFromExhaustion(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx := context.Background()

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	f.reader.EXPECT().ReadProducts(ctx, client).Return(nil, nil).Times(1)

	got, err := f.svc.LoadCollection(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, f.sleep.delays, "a successful empty read makes no retries")
}

func TestLoadCollection_NormalizesCategory(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx := context.Background()

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	f.reader.EXPECT().ReadProducts(ctx, client).Return([]models.Product{
		{ID: "1", Category: "bebidas"},
		{ID: "2", Categoria: "postres"},
		{ID: "3"},
		{ID: "4", Category: "snacks", Categoria: "ignorado"},
	}, nil)

	got, err := f.svc.LoadCollection(ctx)

	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "bebidas", got[0].Category)
	assert.Equal(t, "postres", got[1].Category)
	assert.Equal(t, models.DefaultCategory, got[2].Category)
	assert.Equal(t, "general", got[2].Category)
	assert.Equal(t, "snacks", got[3].Category)
}

func TestLoadCollection_BootstrapFailureIsNotRetried(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	fatal := fmt.Errorf("resolve connection: %w", credentials.ErrMissingConfiguration)

	f.clients.EXPECT().GetClient(ctx).Return(nil, fatal).Times(1)
	f.reader.EXPECT().ReadProducts(gomock.Any(), gomock.Any()).Times(0)

	got, err := f.svc.LoadCollection(ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrClientUnavailable)
	assert.ErrorIs(t, err, credentials.ErrMissingConfiguration)
	assert.Empty(t, f.sleep.delays)
}

func TestLoadCollection_CancelledDuringBackoff(t *testing.T) {
	f := newCatalogFixture(t)
	client := testClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.clients.EXPECT().GetClient(ctx).Return(client, nil)
	f.reader.EXPECT().ReadProducts(ctx, client).DoAndReturn(func(context.Context, *backend.Client) ([]models.Product, error) {
		cancel()
		return nil, errors.New("timeout")
	}).Times(1)

	got, err := f.svc.LoadCollection(ctx)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseDelay: time.Second}

	assert.Equal(t, time.Second, p.Delay(1))
	assert.Equal(t, 2*time.Second, p.Delay(2))
	assert.Equal(t, 3*time.Second, p.Delay(3))
}

func TestProductReader_ReadsNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/products", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		_, _ = w.Write([]byte(`[{"id":2,"name":"b","created_at":"2026-01-02T00:00:00Z"},{"id":1,"name":"a","created_at":"2026-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	client, err := backend.NewClient(models.Connection{URL: srv.URL, AnonKey: "anon"}, backend.DefaultClientOptions(), nil, logger.Nop())
	require.NoError(t, err)

	got, err := NewProductReader().ReadProducts(context.Background(), client)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.RowID("2"), got[0].ID)
}

func TestProductReader_DecodesUUIDAndStringPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"0190a6f2-7b7e-7c3a-9d2e-5f1b2c3d4e5f","name":"mate","price":"4.50","created_at":"2026-01-02T00:00:00Z"}]`))
	}))
	defer srv.Close()

	client, err := backend.NewClient(models.Connection{URL: srv.URL, AnonKey: "anon"}, backend.DefaultClientOptions(), nil, logger.Nop())
	require.NoError(t, err)

	got, err := NewProductReader().ReadProducts(context.Background(), client)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.RowID("0190a6f2-7b7e-7c3a-9d2e-5f1b2c3d4e5f"), got[0].ID)
	assert.InDelta(t, 4.5, float64(got[0].Price), 1e-9)
}

func TestProductReader_DecodeErrorIsTagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"price":"free"}]`))
	}))
	defer srv.Close()

	client, err := backend.NewClient(models.Connection{URL: srv.URL, AnonKey: "anon"}, backend.DefaultClientOptions(), nil, logger.Nop())
	require.NoError(t, err)

	_, err = NewProductReader().ReadProducts(context.Background(), client)

	assert.ErrorIs(t, err, backend.ErrDecode)
}
