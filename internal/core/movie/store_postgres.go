// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/cinedex/internal/platform/database/schema"
	"github.com/taibuivan/cinedex/internal/platform/dberr"
	"github.com/taibuivan/cinedex/internal/platform/postgres"
)

const resourceMovie = "Movie"

// PostgresRepository implements [Repository] on core.movie.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository binds the repository to a pool or a transaction.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
LoadForUpdate fetches the movie row.

No row lock is taken: concurrent roster mutations on the same movie and
role type resolve as last-commit-wins.

Returns:
  - *Movie: The movie with every roster collection unloaded (nil)
  - error: apperr.NotFound("Movie") when no row matches
*/
func (repository *PostgresRepository) LoadForUpdate(context context.Context, id int64) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CoreMovie.Columns(), ", "), schema.CoreMovie.Table, schema.CoreMovie.ID)

	m := &Movie{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Title, &m.OriginalTitle, &m.ReleaseDate, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceMovie, "load_movie")
	}
	return m, nil
}

// Create inserts a movie row.
func (repository *PostgresRepository) Create(context context.Context, m *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`,
		schema.CoreMovie.Table, schema.CoreMovie.Title, schema.CoreMovie.OriginalTitle, schema.CoreMovie.ReleaseDate,
		schema.CoreMovie.ID, schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, m.Title, m.OriginalTitle, m.ReleaseDate).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, resourceMovie, "create_movie")
}
