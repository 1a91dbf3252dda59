package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pii-keeper/internal/config"
	"github.com/MKhiriev/go-pii-keeper/internal/handler"
	"github.com/MKhiriev/go-pii-keeper/internal/logger"
	"github.com/MKhiriev/go-pii-keeper/internal/server"
	"github.com/MKhiriev/go-pii-keeper/internal/service"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-pii-keeper", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-pii-keeper", cfg.Log.Level)
	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	caps, err := store.ProbeCapabilities(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("error probing schema capabilities")
	}
	log.Info().
		Bool("user_envelope", caps.UserEnvelope()).
		Bool("session_data_key", caps.SessionDataKey()).
		Bool("field_sealing", caps.FieldSealing()).
		Bool("contact_email_hash", caps.ContactEmailHash()).
		Msg("schema capabilities")

	if cfg.App.SessionKeySecret == "" {
		log.Warn().Msg("APP_SESSION_KEY_SECRET is not set: session data keys are stored unsealed")
	}

	services, err := service.NewServices(store.NewStorages(db, caps), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, workers.NewWorkers(services, cfg.Workers, log))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
