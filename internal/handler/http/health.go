// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/utils"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.GetHealth(r.Context())

	if _, err := utils.WriteJSON(w, health, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
