// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dynamic-profile/internal/adapter"
	"github.com/MKhiriev/dynamic-profile/internal/config"
	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/models"
)

type profileService struct {
	factAdapter adapter.FactAdapter
	user        models.UserInfo

	now func() time.Time

	logger *logger.Logger
}

func NewProfileService(factAdapter adapter.FactAdapter, cfg config.Profile, logger *logger.Logger) ProfileService {
	return &profileService{
		factAdapter: factAdapter,
		user: models.UserInfo{
			Email: cfg.Email,
			Name:  cfg.Name,
			Stack: cfg.Stack,
		},
		now:    time.Now,
		logger: logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context) (models.ProfileResponse, error) {
	fact, err := s.factAdapter.FetchFact(ctx)
	if err != nil {
		return models.ProfileResponse{}, classifyFactError(err)
	}

	// captured after the fetch so the timestamp reflects assembly time
	timestamp := formatTimestamp(s.now())

	logger.FromContextOr(ctx, s.logger).Info().
		Str("timestamp", timestamp).
		Msg("profile assembled")

	return models.ProfileResponse{
		Status:    models.StatusSuccess,
		User:      s.user,
		Timestamp: timestamp,
		Fact:      fact.Fact,
	}, nil
}

// classifyFactError maps adapter failures onto the service failure kinds.
// Malformed payloads and anything unrecognized are internal errors.
func classifyFactError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrFactAPITimeout):
		return fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	case errors.Is(err, adapter.ErrFactAPIUnavailable):
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
