// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserInfo is the public identity block returned by the profile endpoint.
// It is a projection of the configured profile settings and is rebuilt on
// every request.
type UserInfo struct {
	// Email is the contact address of the profile owner. Any non-empty
	// string is accepted.
	Email string `json:"email" validate:"required"`

	// Name is the display name of the profile owner.
	Name string `json:"name" validate:"required"`

	// Stack is a free-form label describing the owner's technology stack
	// (e.g. "Go/chi").
	Stack string `json:"stack" validate:"required"`
}
