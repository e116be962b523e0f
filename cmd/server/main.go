// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/dynamic-profile/internal/adapter"
	"github.com/MKhiriev/dynamic-profile/internal/config"
	"github.com/MKhiriev/dynamic-profile/internal/handler"
	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/server"
	"github.com/MKhiriev/dynamic-profile/internal/service"
	"github.com/MKhiriev/dynamic-profile/internal/validators"
	"github.com/MKhiriev/dynamic-profile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("dynamic-profile")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().Any("config", cfg).Msg("received configs")

	validator := validators.NewStructValidator()

	factAdapter, err := adapter.NewHTTPFactAdapter(cfg.Adapter, validator, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fact adapter")
	}

	services, err := service.NewServices(factAdapter, validator, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
