// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Jane Doe", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_URL checks the photo URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://img.cinedex.app/p/1.jpg", true},
		{"http", "http://localhost:9000/p.png", true},
		{"relative", "/p/1.jpg", false},
		{"ftp", "ftp://files.cinedex.app/p.jpg", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("photo_url", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").                     // Fails
		MaxLen("name", "abcdef", 3).              // Fails
		Positive("movie_id", 0).                  // Fails
		Min("rank", -1, 0).                       // Fails
		Custom("date_of_death", false, "unused"). // Passes
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}

/*
TestValidator_Chain tests the fluent API when every rule passes.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Agnès Varda").
		MaxLen("name", "Agnès Varda", 11).
		Positive("person_id", 42).
		Min("rank", 0, 0).
		Err()

	assert.NoError(t, err)
}
