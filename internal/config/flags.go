// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Unset flags leave the corresponding fields at their zero value.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-app-name service name
//	-app-version service version
//	-user-email profile email
//	-user-name profile display name
//	-user-stack profile stack label
//	-fact-api-url remote fact API URL
//	-api-timeout remote fact API timeout in seconds
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-log-level log level (trace, debug, info, warn, error)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var appName, appVersion string
	var userEmail, userName, userStack string
	var factAPIURL string
	var apiTimeout int
	var shutdownTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appName, "app-name", "", "Service name")
	fs.StringVar(&appVersion, "app-version", "", "Service version")
	fs.StringVar(&userEmail, "user-email", "", "Profile email")
	fs.StringVar(&userName, "user-name", "", "Profile display name")
	fs.StringVar(&userStack, "user-stack", "", "Profile stack label")
	fs.StringVar(&factAPIURL, "fact-api-url", "", "Remote fact API URL")
	fs.IntVar(&apiTimeout, "api-timeout", 0, "Remote fact API timeout in seconds")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:    appName,
			Version: appVersion,
		},
		Profile: Profile{
			Email: userEmail,
			Name:  userName,
			Stack: userStack,
		},
		Adapter: Adapter{
			FactAPIURL:     factAPIURL,
			TimeoutSeconds: apiTimeout,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. A non-empty host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errInvalidAddress
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("port number must be in range 1-65535, got %d", port)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("incorrect IP-address provided: %q", host)
	}

	a.Host = host
	a.Port = port
	return nil
}
