package service

import (
	"github.com/MKhiriev/go-catalog-gateway/internal/adapter"
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

type Services struct {
	ConfigService      ConfigService
	CatalogService     CatalogService
	WebhookService     WebhookService
	NavigationService  NavigationService
	TranslationService TranslationService
	AppInfoService     AppInfoService
}

func NewServices(
	cfg config.StructuredConfig,
	clients ClientProvider,
	connections ConfigService,
	forwarder adapter.WebhookForwarder,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ConfigService:      connections,
		CatalogService:     NewCatalogService(clients, NewProductReader(), cfg.Backend, nil, logger),
		WebhookService:     NewWebhookService(cfg.Proxy, forwarder, logger),
		NavigationService:  NewNavigationService(cfg.Navigation),
		TranslationService: NewTranslationService(),
		AppInfoService:     appInfo,
	}, nil
}
