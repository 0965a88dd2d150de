// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/pkg/pagination"
	"github.com/taibuivan/cinedex/pkg/pointer"
)

// memoryRepository keeps persons in insertion order.
type memoryRepository struct {
	persons []*Person
}

func (repo *memoryRepository) FindByID(_ context.Context, id int64) (*Person, error) {
	for _, p := range repo.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Person")
}

func (repo *memoryRepository) Insert(_ context.Context, p *Person) error {
	p.ID = int64(len(repo.persons) + 1)
	repo.persons = append(repo.persons, p)
	return nil
}

func (repo *memoryRepository) Search(_ context.Context, filter Filter, limit, offset int) ([]*Person, int, error) {
	var matched []*Person
	for _, p := range repo.persons {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Query)) {
			matched = append(matched, p)
		}
	}
	total := len(matched)
	if offset > total {
		offset = total
	}
	return matched[offset:min(offset+limit, total)], total, nil
}

func newTestService(t *testing.T) (*Service, *memoryRepository) {
	t.Helper()
	repo := &memoryRepository{}
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestPerson_Summary(t *testing.T) {
	born := time.Date(1928, time.May, 30, 0, 0, 0, 0, time.UTC)
	died := time.Date(2019, time.March, 29, 0, 0, 0, 0, time.UTC)
	p := &Person{ID: 3, Name: "Agnès Varda", DateOfBirth: &born, DateOfDeath: &died}

	summary := p.Summary()
	assert.Equal(t, "1928-05-30", *summary.DateOfBirth)
	assert.Equal(t, "2019-03-29", *summary.DateOfDeath)
	assert.Nil(t, summary.PhotoURL)

	encoded, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Agnès Varda","photo_url":null,"date_of_birth":"1928-05-30","date_of_death":"2019-03-29"}`, string(encoded))
}

func TestService_Get(t *testing.T) {
	service, repo := newTestService(t)
	require.NoError(t, repo.Insert(context.Background(), &Person{Name: "Jacques Demy", PhotoURL: pointer.To("https://img.cinedex.app/demy.jpg")}))

	found, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Jacques Demy", found.Name)

	_, err = service.Get(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.Get(context.Background(), 42)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestHandler_Search(t *testing.T) {
	service, repo := newTestService(t)
	for _, name := range []string{"Agnès Varda", "Jacques Demy", "Agnès Jaoui"} {
		require.NoError(t, repo.Insert(context.Background(), &Person{Name: name}))
	}

	router := chi.NewRouter()
	router.Mount("/api/v1/persons", NewHandler(service).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/persons?q=agn&limit=1&page=2", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []Summary      `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Agnès Jaoui", body.Data[0].Name)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 1, Total: 2, TotalPages: 2}, body.Meta)
}

func TestHandler_Get(t *testing.T) {
	service, repo := newTestService(t)
	require.NoError(t, repo.Insert(context.Background(), &Person{Name: "Sandrine Bonnaire"}))

	router := chi.NewRouter()
	router.Mount("/api/v1/persons", NewHandler(service).Routes())

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/persons/1", http.StatusOK},
		{"/api/v1/persons/2", http.StatusNotFound},
		{"/api/v1/persons/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}
