// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the catalog gateway use cases: the retrying
// product reader, webhook forwarding, navigation visibility, translations
// and build info. Handlers depend on the interfaces declared here.
package service

import (
	"context"

	"github.com/MKhiriev/go-catalog-gateway/internal/backend"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientProvider hands out the shared backend client. Its errors are fatal
// for the caller and are never retried.
type ClientProvider interface {
	GetClient(ctx context.Context) (*backend.Client, error)
}

// ProductReader performs one read of the products resource.
type ProductReader interface {
	ReadProducts(ctx context.Context, client *backend.Client) ([]models.Product, error)
}

// ConfigService exposes the public backend connection config.
type ConfigService interface {
	Connection() (models.Connection, error)
}

// CatalogService loads the normalized product collection.
type CatalogService interface {
	// LoadCollection retries transient read errors and returns an empty
	// collection with a nil error once retries are exhausted.
	LoadCollection(ctx context.Context) ([]models.Product, error)
	// LoadCollectionStrict runs the same retry loop but returns
	// [ErrRetriesExhausted] once retries are exhausted.
	LoadCollectionStrict(ctx context.Context) ([]models.Product, error)
}

// WebhookService forwards a request body to a named webhook target.
type WebhookService interface {
	Forward(ctx context.Context, name, contentType string, body []byte) (models.WebhookResponse, error)
}

// NavigationService decides menu visibility per role.
type NavigationService interface {
	MenuVisibility(ctx context.Context, role string) models.MenuVisibility
}

// TranslationService serves the static UI translation tables.
type TranslationService interface {
	// Translations returns the table for the best match of the given
	// language preferences (query values or Accept-Language headers).
	Translations(ctx context.Context, preferences ...string) models.Translations
	// Translate looks key up in lang, then in the default language, and
	// returns key itself when neither has it.
	Translate(lang, key string) string
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
}
