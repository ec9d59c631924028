// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cms/internal/config"
	"github.com/MKhiriev/go-cms/internal/handler"
	"github.com/MKhiriev/go-cms/internal/logger"
	"github.com/MKhiriev/go-cms/internal/server"
	"github.com/MKhiriev/go-cms/internal/service"
	"github.com/MKhiriev/go-cms/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-cms-server").Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}
	printBuildInfo()

	log := logger.NewLogger("go-cms-server", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("documents", cfg.Storage.Documents.Dir).
		Str("credentials", cfg.Storage.Credentials.File).
		Bool("sql_credentials", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
