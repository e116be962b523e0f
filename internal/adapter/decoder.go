// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/dynamic-profile/internal/validators"
	"github.com/MKhiriev/dynamic-profile/models"
)

// decodeRemoteFact turns a raw response body into a [models.RemoteFact].
// The body must be a JSON object carrying a string "fact" and an integer
// "length"; anything else yields [ErrMalformedFact].
func decodeRemoteFact(ctx context.Context, body []byte, validator validators.Validator) (models.RemoteFact, error) {
	var payload models.RemoteFactPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.RemoteFact{}, fmt.Errorf("%w: %w", ErrMalformedFact, err)
	}

	if err := validator.Validate(ctx, payload); err != nil {
		return models.RemoteFact{}, fmt.Errorf("%w: %w", ErrMalformedFact, err)
	}

	return payload.RemoteFact(), nil
}
