// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
)

type memoryRepository struct {
	movies map[int64]*movie.Movie
	nextID int64
}

func (repo *memoryRepository) LoadForUpdate(_ context.Context, id int64) (*movie.Movie, error) {
	m, ok := repo.movies[id]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}
	return m, nil
}

func (repo *memoryRepository) Create(_ context.Context, m *movie.Movie) error {
	repo.nextID++
	m.ID = repo.nextID
	repo.movies[m.ID] = m
	return nil
}

func TestRoleTypes(t *testing.T) {
	crew := movie.CrewRoleTypes()

	assert.Len(t, crew, 18)
	assert.NotContains(t, crew, movie.RoleActor)
	assert.False(t, movie.RoleActor.IsCrew())
	assert.True(t, movie.RoleStuntman.IsCrew())
	assert.False(t, movie.RoleType("gaffer").IsCrew())

	// Callers cannot mutate the registry order.
	crew[0] = "gaffer"
	assert.Equal(t, movie.RoleDirector, movie.CrewRoleTypes()[0])
}

func TestService_Create(t *testing.T) {
	repo := &memoryRepository{movies: map[int64]*movie.Movie{}}
	service := movie.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("valid", func(t *testing.T) {
		created, err := service.Create(context.Background(), "Cléo from 5 to 7", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Nil(t, created.Directors, "rosters start unloaded")
	})

	t.Run("missing_title", func(t *testing.T) {
		_, err := service.Create(context.Background(), "  ", nil, nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}
