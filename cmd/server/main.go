package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-catalog-gateway/internal/adapter"
	"github.com/MKhiriev/go-catalog-gateway/internal/bootstrap"
	"github.com/MKhiriev/go-catalog-gateway/internal/config"
	"github.com/MKhiriev/go-catalog-gateway/internal/credentials"
	"github.com/MKhiriev/go-catalog-gateway/internal/handler"
	"github.com/MKhiriev/go-catalog-gateway/internal/logger"
	"github.com/MKhiriev/go-catalog-gateway/internal/server"
	"github.com/MKhiriev/go-catalog-gateway/internal/service"
	"github.com/MKhiriev/go-catalog-gateway/internal/store"
	"github.com/MKhiriev/go-catalog-gateway/internal/workers"
	"github.com/MKhiriev/go-catalog-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("catalog-gateway").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("catalog-gateway", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	namespace, err := credentials.LoadNamespaceFile(cfg.Backend.EnvFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading credentials namespace")
	}
	resolver := credentials.NewDefaultResolver(nil, namespace)

	sessions, err := store.NewSessionStore(context.Background(), cfg.Storage.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}

	clients := bootstrap.New(resolver, sessions, log,
		bootstrap.WithTimeout(cfg.Backend.RequestTimeout),
	)
	forwarder := adapter.NewHTTPWebhookForwarder(cfg.Proxy, log.WithComponent("webhooks"))

	services, err := service.NewServices(*cfg, clients, resolver, forwarder, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, clients, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if cfg.Backend.WarmUp {
		go workers.NewWorkers(
			workers.NewWarmUp(clients, cfg.Backend.RequestTimeout, log.WithComponent("warm-up")),
		).Run(context.Background())
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Print(build.String())
}
