// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . ProfileService,AppInfoService

import (
	"context"

	"github.com/MKhiriev/dynamic-profile/models"
)

// ProfileService assembles the profile returned by GET /me.
type ProfileService interface {
	// GetProfile fetches a fresh fact and combines it with the configured
	// user identity. Errors wrap exactly one of [ErrUpstreamTimeout],
	// [ErrUpstreamUnavailable] or [ErrInternal].
	GetProfile(ctx context.Context) (models.ProfileResponse, error)
}

// AppInfoService reports static service metadata and liveness.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
	GetHealth(ctx context.Context) models.HealthStatus
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
// Implementations wrap an existing ProfileService to add behavior such as
// validating.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
