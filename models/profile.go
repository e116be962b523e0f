// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusSuccess is the only status value a [ProfileResponse] ever carries.
const StatusSuccess = "success"

// ProfileResponse is the body of a successful GET /me response.
type ProfileResponse struct {
	// Status is always [StatusSuccess].
	Status string `json:"status" validate:"eq=success"`

	// User holds the configured identity of the profile owner.
	User UserInfo `json:"user"`

	// Timestamp is the UTC instant at which the response was assembled,
	// formatted as RFC 3339 with nanosecond precision.
	Timestamp string `json:"timestamp" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`

	// Fact is the text fetched from the remote fact API for this request.
	Fact string `json:"fact"`
}
