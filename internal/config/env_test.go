// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"CONFIG",
	"APP_NAME", "APP_VERSION",
	"USER_EMAIL", "USER_NAME", "USER_STACK",
	"CAT_FACTS_API_URL", "API_TIMEOUT",
	"SERVER_ADDRESS", "SERVER_CORS_ALLOWED_ORIGINS", "SERVER_SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads; t.Setenv registers
// restoration of the previous value on cleanup.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":    "Profile API",
		"APP_VERSION": "2.0.0",

		"USER_EMAIL": "jane@example.com",
		"USER_NAME":  "Jane Doe",
		"USER_STACK": "Go/chi",

		"CAT_FACTS_API_URL": "https://facts.example.com/fact",
		"API_TIMEOUT":       "3",

		"SERVER_ADDRESS":              "localhost:8080",
		"SERVER_CORS_ALLOWED_ORIGINS": "https://a.example.com,https://b.example.com",
		"SERVER_SHUTDOWN_TIMEOUT":     "15s",

		"LOG_LEVEL": "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, App{Name: "Profile API", Version: "2.0.0"}, cfg.App)
	assert.Equal(t, Profile{Email: "jane@example.com", Name: "Jane Doe", Stack: "Go/chi"}, cfg.Profile)
	assert.Equal(t, "https://facts.example.com/fact", cfg.Adapter.FactAPIURL)
	assert.Equal(t, 3, cfg.Adapter.TimeoutSeconds)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"USER_EMAIL":  "jane@example.com",
		"API_TIMEOUT": "7",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", cfg.Profile.Email)
	assert.Empty(t, cfg.Profile.Name)
	assert.Equal(t, 7, cfg.Adapter.TimeoutSeconds)
	assert.Empty(t, cfg.Adapter.FactAPIURL)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidTimeout(t *testing.T) {
	setEnvVars(t, map[string]string{"API_TIMEOUT": "five"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}
