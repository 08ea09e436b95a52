package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-registry/internal/adapter"
	"github.com/MKhiriev/go-users-registry/internal/client"
	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("users-registry-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = leveled

	registry, err := adapter.NewHTTPRegistryAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create registry adapter")
	}

	app, err := client.NewApp(registry, cfg.Command, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Fprintf(os.Stderr, "Build version: %s\n", info.Version)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", info.Date)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", info.Commit)

	return info
}
