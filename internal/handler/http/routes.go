// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		withCORS(h.corsAllowedOrigins),
		h.withLogging,
		h.withRecovery,
		withGZip,
	)

	router.Get("/", h.getServiceInfo)
	router.Get("/health", h.getHealth)
	router.Get("/version", h.getServerVersion)
	router.Get("/me", h.getProfile)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
