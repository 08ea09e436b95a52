package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/handler"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/server"
	"github.com/MKhiriev/go-users-registry/internal/service"
	"github.com/MKhiriev/go-users-registry/internal/store"
	"github.com/MKhiriev/go-users-registry/internal/workers"
	"github.com/MKhiriev/go-users-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("users-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(services, cfg.Workers, log).Run(ctx)

	srv.RunServer()
	cancel()
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Fprintf(os.Stdout, "Build version: %s\n", info.Version)
	fmt.Fprintf(os.Stdout, "Build date: %s\n", info.Date)
	fmt.Fprintf(os.Stdout, "Build commit: %s\n", info.Commit)

	return info
}
