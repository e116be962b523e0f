// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/service"
	"github.com/MKhiriev/dynamic-profile/internal/utils"
	"github.com/MKhiriev/dynamic-profile/models"
)

var errorStatusMap = map[error]int{
	service.ErrUpstreamTimeout:     http.StatusGatewayTimeout,
	service.ErrUpstreamUnavailable: http.StatusServiceUnavailable,
	service.ErrInternal:            http.StatusInternalServerError,
}

var errorDetailMap = map[error]string{
	service.ErrUpstreamTimeout:     detailTimeout,
	service.ErrUpstreamUnavailable: detailUnavailable,
	service.ErrInternal:            detailInternal,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return detailInternal
}

// writeError writes the {"detail": ...} envelope with the given status.
func writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
