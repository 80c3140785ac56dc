// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/service"
)

// WarmUp builds the shared backend client once at startup. A failure is
// only logged; the next caller of GetClient tries again.
type WarmUp struct {
	clients service.ClientProvider
	timeout time.Duration

	logger *logger.Logger
}

func NewWarmUp(clients service.ClientProvider, timeout time.Duration, logger *logger.Logger) *WarmUp {
	return &WarmUp{clients: clients, timeout: timeout, logger: logger}
}

func (w *WarmUp) Run(ctx context.Context) {
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	start := time.Now()
	if _, err := w.clients.GetClient(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("backend client warm-up failed")
		return
	}
	w.logger.Info().Dur("duration", time.Since(start)).Msg("backend client ready")
}
