// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/dynamic-profile/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestStructValidator_RemoteFactPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload models.RemoteFactPayload
		wantErr bool
		errText string
	}{
		{
			name:    "valid",
			payload: models.RemoteFactPayload{Fact: strPtr("Cats purr."), Length: intPtr(10)},
		},
		{
			name:    "empty fact is still present",
			payload: models.RemoteFactPayload{Fact: strPtr(""), Length: intPtr(0)},
		},
		{
			name:    "missing fact",
			payload: models.RemoteFactPayload{Length: intPtr(10)},
			wantErr: true,
			errText: "fact: required",
		},
		{
			name:    "missing length",
			payload: models.RemoteFactPayload{Fact: strPtr("Cats purr.")},
			wantErr: true,
			errText: "length: required",
		},
	}

	v := NewStructValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.payload)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestStructValidator_ProfileResponse(t *testing.T) {
	valid := models.ProfileResponse{
		Status:    models.StatusSuccess,
		User:      models.UserInfo{Email: "jane@example.com", Name: "Jane", Stack: "Go"},
		Timestamp: "2026-10-18T10:00:00.123456789Z",
		Fact:      "fact",
	}

	v := NewStructValidator()
	require.NoError(t, v.Validate(context.Background(), valid))
	require.NoError(t, v.Validate(context.Background(), &valid))

	wrongStatus := valid
	wrongStatus.Status = "error"
	assert.ErrorIs(t, v.Validate(context.Background(), wrongStatus), ErrValidationFailed)

	badTimestamp := valid
	badTimestamp.Timestamp = "yesterday"
	assert.ErrorIs(t, v.Validate(context.Background(), badTimestamp), ErrValidationFailed)

	plainEmail := valid
	plainEmail.User.Email = "not-an-email"
	assert.NoError(t, v.Validate(context.Background(), plainEmail))

	emptyEmail := valid
	emptyEmail.User.Email = ""
	err := v.Validate(context.Background(), emptyEmail)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "user.email")
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()
	payload := models.RemoteFactPayload{Fact: strPtr("only fact")}

	assert.NoError(t, v.Validate(context.Background(), payload, "Fact"))
	assert.Error(t, v.Validate(context.Background(), payload, "Length"))
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	v := NewStructValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "not a struct"), ErrUnsupportedType)
}
