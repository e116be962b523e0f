// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/dynamic-profile/internal/app"

// Detail messages written in the {"detail": ...} body of error responses.
const (
	detailTimeout          = app.MsgExternalAPITimeout
	detailUnavailable      = app.MsgExternalAPIUnavailable
	detailInternal         = app.MsgInternalServerError
	detailNotFound         = app.MsgNotFound
	detailMethodNotAllowed = app.MsgMethodNotAllowed
)
