// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a chi router with a small set of routes and installs
// CheckHTTPMethod as the MethodNotAllowed handler.
func buildRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.MethodNotAllowed(CheckHTTPMethod(r))
	return r
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{"registered GET", http.MethodGet, "/items", http.StatusOK, ""},
		{"registered POST", http.MethodPost, "/items", http.StatusCreated, ""},
		{"DELETE on multi-method route", http.MethodDelete, "/items", http.StatusMethodNotAllowed, "GET, POST"},
		{"POST on GET-only route", http.MethodPost, "/status", http.StatusMethodNotAllowed, "GET"},
		{"PUT on GET-only route", http.MethodPut, "/status", http.StatusMethodNotAllowed, "GET"},
	}

	router := buildRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
			}
		})
	}
}

func TestAllowedMethods_EmptyRoute(t *testing.T) {
	assert.Empty(t, allowedMethods(chi.Route{}))
}
