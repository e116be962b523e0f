// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/dynamic-profile/internal/adapter"
	"github.com/MKhiriev/dynamic-profile/internal/config"
	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/validators"
)

type Services struct {
	AppInfoService AppInfoService
	ProfileService ProfileService
}

func NewServices(factAdapter adapter.FactAdapter, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	profileService := NewProfileValidationService(validator).
		Wrap(NewProfileService(factAdapter, cfg.Profile, logger))

	return &Services{
		AppInfoService: appInfoService,
		ProfileService: profileService,
	}, nil
}
