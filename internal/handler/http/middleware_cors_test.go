// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		method         string
		origin         string
		preflight      bool
		wantStatus     int
		wantAllowOrig  string
		wantVaryOrigin bool
	}{
		{
			name:       "no origin header passes through",
			allowed:    []string{"https://a.example"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:          "wildcard admits any origin",
			allowed:       []string{"*"},
			method:        http.MethodGet,
			origin:        "https://anything.example",
			wantStatus:    http.StatusOK,
			wantAllowOrig: "*",
		},
		{
			name:           "listed origin is echoed",
			allowed:        []string{"https://a.example", "https://b.example"},
			method:         http.MethodGet,
			origin:         "https://B.example",
			wantStatus:     http.StatusOK,
			wantAllowOrig:  "https://B.example",
			wantVaryOrigin: true,
		},
		{
			name:       "unlisted origin gets no CORS headers",
			allowed:    []string{"https://a.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusOK,
		},
		{
			name:          "preflight from allowed origin",
			allowed:       []string{"*"},
			method:        http.MethodOptions,
			origin:        "https://a.example",
			preflight:     true,
			wantStatus:    http.StatusNoContent,
			wantAllowOrig: "*",
		},
		{
			name:       "preflight from unlisted origin is forbidden",
			allowed:    []string{"https://a.example"},
			method:     http.MethodOptions,
			origin:     "https://evil.example",
			preflight:  true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty list denies cross-origin preflight",
			allowed:    nil,
			method:     http.MethodOptions,
			origin:     "https://a.example",
			preflight:  true,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/me", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
				req.Header.Set("Access-Control-Request-Headers", "X-Trace-ID")
			}

			rec := httptest.NewRecorder()
			withCORS(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrig, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantVaryOrigin {
				assert.Contains(t, rec.Header().Values("Vary"), "Origin")
			}
			if tt.preflight && tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, corsAllowedMethods, rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "X-Trace-ID", rec.Header().Get("Access-Control-Allow-Headers"))
				assert.Equal(t, corsMaxAge, rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
