// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/MKhiriev/dynamic-profile/internal/utils"
	"github.com/MKhiriev/dynamic-profile/models"
)

var endpointDescriptions = map[string]string{
	"/me":      "GET - Fetch profile with dynamic cat fact",
	"/health":  "GET - Health check endpoint",
	"/version": "GET - Service version as plain text",
}

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appInfo := h.services.AppInfoService

	info := models.ServiceInfo{
		Message:   fmt.Sprintf("Welcome to the %s API", appInfo.GetAppName(ctx)),
		Version:   appInfo.GetAppVersion(ctx),
		Endpoints: endpointDescriptions,
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing service info")
	}
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, detailNotFound)
}
