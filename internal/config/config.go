// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// service. It aggregates all sub-configurations and is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file. Once built it is never mutated.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: rules checked by [StructuredConfig.validate].
type StructuredConfig struct {
	// App holds the service name and version reported by the root and
	// version endpoints.
	App App `envPrefix:"APP_"`

	// Profile holds the fixed identity returned by GET /me.
	Profile Profile `envPrefix:"USER_"`

	// Adapter holds the remote fact API settings.
	Adapter Adapter

	// Server holds network, CORS and shutdown settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds service metadata.
type App struct {
	// Name is the human-readable service name.
	// Env: APP_NAME
	Name string `env:"NAME" validate:"required"`

	// Version is the semantic version string of the running service.
	// Env: APP_VERSION
	Version string `env:"VERSION" validate:"required"`
}

// Profile holds the identity of the profile owner.
type Profile struct {
	// Env: USER_EMAIL
	Email string `env:"EMAIL" validate:"required"`

	// Env: USER_NAME
	Name string `env:"NAME" validate:"required"`

	// Env: USER_STACK
	Stack string `env:"STACK" validate:"required"`
}

// Adapter holds settings of the remote fact API client.
type Adapter struct {
	// FactAPIURL is the absolute URL queried with GET for every profile
	// request.
	// Env: CAT_FACTS_API_URL
	FactAPIURL string `env:"CAT_FACTS_API_URL" validate:"required,url"`

	// TimeoutSeconds bounds a single round trip to the fact API.
	// Env: API_TIMEOUT
	TimeoutSeconds int `env:"API_TIMEOUT" validate:"gt=0"`
}

// RequestTimeout returns TimeoutSeconds as a [time.Duration].
func (a Adapter) RequestTimeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Server holds settings of the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required"`

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. "*" allows any origin.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma-separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level written ("trace", "debug", "info", "warn",
	// "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn error"`
}

// Default values used when no source provides a setting.
const (
	DefaultAppName         = "Dynamic Profile Endpoint"
	DefaultAppVersion      = "1.0.0"
	DefaultUserEmail       = "gwinsetech@gmail.com"
	DefaultUserName        = "Godwin Sunday Ekpoesu"
	DefaultUserStack       = "Go/chi"
	DefaultFactAPIURL      = "https://catfact.ninja/fact"
	DefaultTimeoutSeconds  = 5
	DefaultHTTPAddress     = "0.0.0.0:8000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
)

// DefaultConfig returns the configuration used when no other source
// overrides a field.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Profile: Profile{
			Email: DefaultUserEmail,
			Name:  DefaultUserName,
			Stack: DefaultUserStack,
		},
		Adapter: Adapter{
			FactAPIURL:     DefaultFactAPIURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			CORSAllowedOrigins: []string{"*"},
			ShutdownTimeout:    DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the service configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
