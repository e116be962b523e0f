// Package config provides configuration loading, merging, and validation
// for the service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults ([DefaultConfig])
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetStructuredConfig]. The returned value is treated as
// immutable and passed explicitly to the components that need it.
package config
