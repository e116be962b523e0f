// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteFact is the validated payload returned by the remote fact API.
type RemoteFact struct {
	Fact   string
	Length int
}

// RemoteFactPayload is the wire shape of the remote fact API response.
//
// Fields are pointers so that a missing key can be told apart from a zero
// value: both fields must be present for the payload to pass validation.
type RemoteFactPayload struct {
	Fact   *string `json:"fact" validate:"required"`
	Length *int    `json:"length" validate:"required"`
}

// RemoteFact converts the payload into a [RemoteFact]. Missing fields become
// zero values, so callers validate the payload first.
func (p RemoteFactPayload) RemoteFact() RemoteFact {
	var fact RemoteFact
	if p.Fact != nil {
		fact.Fact = *p.Fact
	}
	if p.Length != nil {
		fact.Length = *p.Length
	}
	return fact
}
