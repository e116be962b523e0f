// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
	// configuration breaks a validation rule (e.g. non-URL
	// fact API address or non-positive timeout).
	ErrInvalidConfig = errors.New("invalid configuration")

	errInvalidAddress = errors.New("need address in a form `host:port`")
)
