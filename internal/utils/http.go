// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/dynamic-profile/internal/app"
)

// internalErrorBody is written when a response value cannot be serialized,
// so that callers still receive a JSON error envelope.
const internalErrorBody = `{"detail":"` + app.MsgInternalServerError + `"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, nothing of data is written: the response becomes
// 500 Internal Server Error with a JSON {"detail": ...} body and a wrapped
// error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.HealthStatus{Status: "healthy"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Detail: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
