// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/utils"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profile, err := h.services.ProfileService.GetProfile(ctx)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("error getting profile")
		writeError(w, r, status, detailFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing profile")
	}
}
