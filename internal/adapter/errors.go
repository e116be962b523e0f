// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrFactAPITimeout indicates the round trip did not complete within the
	// configured timeout.
	ErrFactAPITimeout = errors.New("fact API timeout")

	// ErrFactAPIUnavailable indicates a transport failure or a non-2xx
	// response from the fact API.
	ErrFactAPIUnavailable = errors.New("fact API unavailable")

	// ErrMalformedFact indicates a 2xx response whose body is not a valid
	// fact payload.
	ErrMalformedFact = errors.New("malformed fact payload")

	errEmptyFactAPIURL = errors.New("empty fact API url")
)
