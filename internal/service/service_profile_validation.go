// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dynamic-profile/internal/validators"
	"github.com/MKhiriev/dynamic-profile/models"
)

// ProfileValidationService checks every profile produced by the wrapped
// service before it reaches the transport layer.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService(validator validators.Validator) ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validator,
	}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context) (models.ProfileResponse, error) {
	profile, err := v.inner.GetProfile(ctx)
	if err != nil {
		return models.ProfileResponse{}, err
	}

	if err = v.validator.Validate(ctx, profile); err != nil {
		return models.ProfileResponse{}, fmt.Errorf("%w: invalid profile response: %w", ErrInternal, err)
	}

	return profile, nil
}

func (v *ProfileValidationService) Wrap(wrapped ProfileService) ProfileService {
	v.inner = wrapped
	return v
}
