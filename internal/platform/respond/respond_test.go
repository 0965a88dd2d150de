// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/cinedex/internal/platform/apperr"
)

func TestCollection(t *testing.T) {
	recorder := httptest.NewRecorder()
	Collection(recorder, []string{})
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = httptest.NewRecorder()
	Collection(recorder, []string{"director"})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":["director"]}`, recorder.Body.String())
}

func TestError(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "client_error",
			err:    apperr.NotFound("Movie"),
			status: http.StatusNotFound,
			body:   `{"error":"Movie not found","code":"NOT_FOUND"}`,
		},
		{
			name:   "validation_details",
			err:    apperr.ValidationError("Invalid input", apperr.FieldError{Field: "actors[0].rank", Message: "must be at least 0"}),
			status: http.StatusBadRequest,
			body:   `{"error":"Invalid input","code":"VALIDATION_ERROR","details":[{"field":"actors[0].rank","message":"must be at least 0"}]}`,
		},
		{
			name:   "plain_error_is_hidden",
			err:    errors.New("pq: relation does not exist"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			Error(recorder, request, tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, recorder.Body.String())
			}
			assert.NotContains(t, recorder.Body.String(), "relation does not exist")
		})
	}
}
