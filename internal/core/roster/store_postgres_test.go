// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/core/roster"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/postgres/pgtest"
)

func TestPostgres_RosterLifecycle(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	movies := movie.NewService(movie.NewPostgresRepository(pool), logger)
	cleo, err := movies.Create(ctx, "Cléo from 5 to 7", nil, nil)
	require.NoError(t, err)

	services := roster.NewServices(roster.NewRegistry(), roster.NewPostgresTransactor(pool), nil, logger)
	directors, err := services.Crew(movie.RoleDirector)
	require.NoError(t, err)

	t.Run("jane_doe", func(t *testing.T) {
		added, err := directors.Add(ctx, cleo.ID, []roster.CreditInput{{Person: person.Input{Name: "Jane Doe"}}})
		require.NoError(t, err)
		require.Len(t, added, 1)
		assert.Equal(t, "Jane Doe", added[0].Person.Name)

		unchanged, err := directors.RemoveOne(ctx, cleo.ID, 999)
		require.NoError(t, err)
		assert.Equal(t, added, unchanged)
	})

	t.Run("replace_keeps_input_order", func(t *testing.T) {
		inputs := []roster.CreditInput{
			{Person: person.Input{Name: "Zed"}},
			{Person: person.Input{Name: "Amy"}},
			{Person: person.Input{Name: "Mo"}},
		}
		replaced, err := directors.Replace(ctx, cleo.ID, inputs)
		require.NoError(t, err)

		current, err := directors.GetByMovie(ctx, cleo.ID)
		require.NoError(t, err)
		assert.Equal(t, replaced, current)
		assert.Equal(t, "Zed", current[0].Person.Name)
		assert.Equal(t, "Mo", current[2].Person.Name)
	})

	t.Run("failed_resolution_rolls_back", func(t *testing.T) {
		before, err := directors.GetByMovie(ctx, cleo.ID)
		require.NoError(t, err)

		_, err = directors.Replace(ctx, cleo.ID, []roster.CreditInput{
			{Person: person.Input{Name: "Never Saved"}},
			{Person: person.Existing(123456)},
		})
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

		after, err := directors.GetByMovie(ctx, cleo.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		found, total, err := person.NewPostgresRepository(pool).Search(ctx, person.Filter{Query: "never saved"}, 10, 0)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, found)
	})

	t.Run("cast_rank_round_trip", func(t *testing.T) {
		cast, err := services.Cast.Replace(ctx, cleo.ID, []roster.CastInput{
			{Person: person.Input{Name: "Corinne Marchand"}, Role: "Cléo", Rank: 2},
			{Person: person.Input{Name: "Antoine Bourseiller"}, Role: "Antoine", Rank: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, *cast[0].Rank)
		assert.Equal(t, 1, *cast[1].Rank)

		// Another role's table is untouched.
		directorsAfter, err := directors.GetByMovie(ctx, cleo.ID)
		require.NoError(t, err)
		assert.Len(t, directorsAfter, 3)
	})

	t.Run("clear_twice", func(t *testing.T) {
		for range 2 {
			cleared, err := directors.Clear(ctx, cleo.ID)
			require.NoError(t, err)
			assert.True(t, cleared)
		}

		current, err := directors.GetByMovie(ctx, cleo.ID)
		require.NoError(t, err)
		assert.Empty(t, current)
	})

	t.Run("unknown_movie", func(t *testing.T) {
		_, err := directors.GetByMovie(ctx, cleo.ID+1000)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

func TestPostgres_PersonSearchFoldsAccents(t *testing.T) {
	pool := pgtest.Start(t)
	ctx := context.Background()
	repo := person.NewPostgresRepository(pool)

	for _, name := range []string{"Agnès Varda", "Jacques Demy", "Agnes Jaoui"} {
		require.NoError(t, repo.Insert(ctx, &person.Person{Name: name}))
	}

	found, total, err := repo.Search(ctx, person.Filter{Query: "AGNES"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, found, 2)
	assert.Equal(t, "Agnes Jaoui", found[0].Name)
	assert.Equal(t, "Agnès Varda", found[1].Name)

	loaded, err := repo.FindByID(ctx, found[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Agnès Varda", loaded.Name)

	_, err = repo.FindByID(ctx, 987654)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
