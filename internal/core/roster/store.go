// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/database/schema"
)

// Store persists association rows. Every method is scoped to one movie in
// one association table and preserves insertion order.
type Store interface {
	// List returns the movie's rows in insertion order, persons joined in.
	List(context context.Context, table schema.MovieCreditTable, movieID int64) ([]Row, error)

	// Replace deletes every row of the movie then inserts rows in order.
	Replace(context context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error

	// Insert appends rows in order. No duplicate detection is performed.
	Insert(context context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error

	// DeletePerson removes every row of the movie that references personID.
	DeletePerson(context context.Context, table schema.MovieCreditTable, movieID, personID int64) (int64, error)

	// DeleteAll removes every row of the movie.
	DeleteAll(context context.Context, table schema.MovieCreditTable, movieID int64) (int64, error)
}

// Tx exposes the repositories bound to one open transaction.
type Tx interface {
	Movies() movie.Repository
	Persons() person.Repository
	Credits() Store
}

// Transactor runs a unit of work atomically. fn's error aborts and rolls
// back everything written through tx.
type Transactor interface {
	WithinTx(context context.Context, fn func(context context.Context, tx Tx) error) error
}
