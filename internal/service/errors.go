// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Failure kinds surfaced by [ProfileService]. The HTTP layer maps each of
// them to a status code.
var (
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInternal            = errors.New("internal error")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNameIsNotSpecified    = errors.New("app name is not specified")
)
