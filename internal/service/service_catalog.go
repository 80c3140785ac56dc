// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

// RetryPolicy bounds the product read loop. Attempt n (n >= 1) waits
// BaseDelay*n before it runs; the loop makes at most MaxRetries+1 reads.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Delay returns the wait before retry n.
func (p RetryPolicy) Delay(n int) time.Duration {
	return p.BaseDelay * time.Duration(n)
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type catalogService struct {
	clients ClientProvider
	reader  ProductReader
	policy  RetryPolicy
	sleep   SleepFunc

	logger *logger.Logger
}

// NewCatalogService builds the retrying product reader. A nil sleep uses a
// context-aware timer.
func NewCatalogService(clients ClientProvider, reader ProductReader, cfg config.Backend, sleep SleepFunc, log *logger.Logger) CatalogService {
	if sleep == nil {
		sleep = sleepContext
	}
	return &catalogService{
		clients: clients,
		reader:  reader,
		policy:  RetryPolicy{MaxRetries: cfg.Retries(), BaseDelay: cfg.RetryBaseDelay},
		sleep:   sleep,
		logger:  log.WithComponent("catalog"),
	}
}

func (s *catalogService) LoadCollection(ctx context.Context) ([]models.Product, error) {
	products, err := s.load(ctx)
	if errors.Is(err, ErrRetriesExhausted) {
		s.logger.Err(err).Str("func", "catalogService.LoadCollection").Msg("returning empty product collection")
		return []models.Product{}, nil
	}
	return products, err
}

func (s *catalogService) LoadCollectionStrict(ctx context.Context) ([]models.Product, error) {
	return s.load(ctx)
}

func (s *catalogService) load(ctx context.Context) ([]models.Product, error) {
	client, err := s.clients.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientUnavailable, err)
	}

	var lastErr error
	for attempt := 0; attempt <= s.policy.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.policy.Delay(attempt)
			s.logger.Warn().
				Err(lastErr).
				Str("func", "catalogService.load").
				Int("retry", attempt).
				Int("max_retries", s.policy.MaxRetries).
				Dur("delay", delay).
				Msg("product read failed, retrying")
			if err = s.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		products, err := s.reader.ReadProducts(ctx, client)
		if err == nil {
			return normalizeProducts(products), nil
		}
		lastErr = err
		if errors.Is(err, backend.ErrDecode) {
			s.logger.Error().
				Err(err).
				Str("func", "catalogService.load").
				Int("attempt", attempt+1).
				Msg("product rows do not match the product model")
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, s.policy.MaxRetries+1, lastErr)
}

// normalizeProducts returns a non-nil slice with every category filled.
func normalizeProducts(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.Normalize())
	}
	return out
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
