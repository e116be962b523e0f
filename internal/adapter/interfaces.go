// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the third-party fact API.
//
// The primary abstraction is [FactAdapter], which decouples the service layer
// from the HTTP transport. The package ships a resty-based implementation
// ([NewHTTPFactAdapter]).
//
// Transport failures, non-2xx statuses and malformed payloads are mapped to
// the sentinel values in errors.go so that callers can classify failures
// with [errors.Is] (e.g. [ErrFactAPITimeout] when the round trip exceeds the
// configured timeout).
package adapter

import (
	"context"

	"github.com/MKhiriev/dynamic-profile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fact_adapter_mock.go -package=mock

// FactAdapter fetches facts from the remote fact API.
type FactAdapter interface {
	// FetchFact performs exactly one GET against the configured fact API and
	// returns the validated payload. Every call is a fresh round trip; there
	// is no retry and no caching.
	//
	// Returned errors wrap one of [ErrFactAPITimeout], [ErrFactAPIUnavailable]
	// or [ErrMalformedFact].
	FetchFact(ctx context.Context) (models.RemoteFact, error)
}
