// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "detail" field of JSON error bodies. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgExternalAPITimeout accompanies 504 when the fact API does not answer
	// within the configured timeout.
	MsgExternalAPITimeout = "External API timeout - please try again"

	// MsgExternalAPIUnavailable accompanies 503 when the fact API cannot be
	// reached or answers with a non-2xx status.
	MsgExternalAPIUnavailable = "External API is currently unavailable"

	// MsgInternalServerError accompanies 500 for malformed upstream payloads,
	// serialization failures and recovered panics.
	MsgInternalServerError = "An unexpected error occurred"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
