// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dynamic-profile/internal/validators"
)

// validate checks the merged [StructuredConfig] against the `validate` tags
// declared on its fields.
func (cfg *StructuredConfig) validate() error {
	if err := validators.NewStructValidator().Validate(context.Background(), cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
