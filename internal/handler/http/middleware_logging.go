// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request. The matched chi route
// pattern is logged as "route" when one matched.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		if route := routePattern(r); route != "" {
			event = event.Str("route", route)
		}

		event.Msg("request served")
	})
}

// routePattern returns the chi pattern matched for r, or "" when the request
// did not pass through a chi router or matched nothing.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
