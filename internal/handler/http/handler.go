// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/dynamic-profile/internal/config"
	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/service"
)

type Handler struct {
	services *service.Services

	corsAllowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}
