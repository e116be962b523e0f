// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the validation step applied at the service's
// boundaries: payloads decoded from the remote fact API, responses assembled
// before serialization, and the merged configuration at startup.
//
// Validation rules are declared with `validate` struct tags and evaluated by
// go-playground/validator. Failures are returned wrapped in
// [ErrValidationFailed] so callers can match them with [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
