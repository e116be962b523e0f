// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Profile struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Stack string `json:"stack"`
	} `json:"profile,omitempty"`

	Adapter struct {
		FactAPIURL     string `json:"fact_api_url"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:    jsonCfg.App.Name,
			Version: jsonCfg.App.Version,
		},
		Profile: Profile{
			Email: jsonCfg.Profile.Email,
			Name:  jsonCfg.Profile.Name,
			Stack: jsonCfg.Profile.Stack,
		},
		Adapter: Adapter{
			FactAPIURL:     jsonCfg.Adapter.FactAPIURL,
			TimeoutSeconds: jsonCfg.Adapter.TimeoutSeconds,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
