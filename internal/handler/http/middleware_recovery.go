// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/dynamic-profile/internal/logger"
)

// withRecovery turns a panic in a downstream handler into a 500 response
// with the JSON error envelope, unless the response was already started.
// http.ErrAbortHandler is re-raised so the
// server can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Any("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if rw, ok := w.(*responseWriter); ok && rw.wroteHeader {
				return
			}
			writeError(w, r, http.StatusInternalServerError, detailInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
