package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/contact-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/contact-keeper/internal/handler/http"
	"github.com/MKhiriev/contact-keeper/internal/logger"
	"github.com/MKhiriev/contact-keeper/internal/server"
	"github.com/MKhiriev/contact-keeper/internal/service"
	"github.com/MKhiriev/contact-keeper/internal/store"
	"github.com/MKhiriev/contact-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("contact-keeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// an unreachable database at boot is unrecoverable: fail fast
	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(*storages, *cfg, log)
	handler := handlerhttp.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
