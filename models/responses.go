// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthyStatus is the status reported by the health endpoint while the
// process is serving requests.
const HealthyStatus = "healthy"

// ErrorResponse is the JSON envelope used for every non-2xx response.
type ErrorResponse struct {
	// Detail is a short human-readable description of the failure.
	Detail string `json:"detail"`
}

// ServiceInfo is the body of GET /. It describes the service and lists the
// endpoints it exposes.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
