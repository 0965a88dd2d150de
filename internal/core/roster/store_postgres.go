// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/database/schema"
	"github.com/taibuivan/cinedex/internal/platform/dberr"
	"github.com/taibuivan/cinedex/internal/platform/postgres"
)

const resourceCredit = "Credit"

// # Transactions

// PostgresTransactor opens one pgx transaction per roster operation.
type PostgresTransactor struct {
	db postgres.TxBeginner
}

// NewPostgresTransactor binds the transactor to a pool.
func NewPostgresTransactor(db postgres.TxBeginner) *PostgresTransactor {
	return &PostgresTransactor{db: db}
}

// WithinTx implements [Transactor].
func (transactor *PostgresTransactor) WithinTx(context context.Context, fn func(context context.Context, tx Tx) error) error {
	return postgres.WithTx(context, transactor.db, func(transaction pgx.Tx) error {
		return fn(context, postgresTx{transaction: transaction})
	})
}

type postgresTx struct {
	transaction pgx.Tx
}

func (tx postgresTx) Movies() movie.Repository {
	return movie.NewPostgresRepository(tx.transaction)
}

func (tx postgresTx) Persons() person.Repository {
	return person.NewPostgresRepository(tx.transaction)
}

func (tx postgresTx) Credits() Store {
	return NewPostgresStore(tx.transaction)
}

// # Association Rows

// PostgresStore implements [Store] on the core.movie_<role> tables.
type PostgresStore struct {
	db postgres.DBTX
}

// NewPostgresStore binds the store to a pool or a transaction.
func NewPostgresStore(db postgres.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

/*
List returns the roster rows joined with their persons.

Rows are ordered by the association id, which is allocated in insertion
order, so the result matches the order the caller supplied.
*/
func (store *PostgresStore) List(context context.Context, table schema.MovieCreditTable, movieID int64) ([]Row, error) {
	rankColumn := "0"
	if table.Ranked() {
		rankColumn = "a." + table.Rank
	}

	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, %s, a.%s,
		       p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s
		FROM %s a
		JOIN %s p ON p.%s = a.%s
		WHERE a.%s = $1
		ORDER BY a.%s ASC
	`,
		table.ID, table.MovieID, table.Role, rankColumn, table.CreatedAt,
		schema.CorePerson.ID, schema.CorePerson.Name, schema.CorePerson.DateOfBirth, schema.CorePerson.DateOfDeath,
		schema.CorePerson.PhotoURL, schema.CorePerson.CreatedAt, schema.CorePerson.UpdatedAt,
		table.Table,
		schema.CorePerson.Table, schema.CorePerson.ID, table.PersonID,
		table.MovieID,
		table.ID,
	)

	rows, err := store.db.Query(context, query, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceCredit, "list_"+table.Table)
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ID, &row.MovieID, &row.Role, &row.Rank, &row.CreatedAt,
			&row.Person.ID, &row.Person.Name, &row.Person.DateOfBirth, &row.Person.DateOfDeath,
			&row.Person.PhotoURL, &row.Person.CreatedAt, &row.Person.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, resourceCredit, "scan_"+table.Table)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceCredit, "list_"+table.Table)
	}

	return result, nil
}

// Replace implements [Store]. Must run inside a transaction to be atomic.
func (store *PostgresStore) Replace(context context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error {
	if _, err := store.DeleteAll(context, table, movieID); err != nil {
		return err
	}
	return store.Insert(context, table, movieID, rows)
}

/*
Insert queues one INSERT per row in a single pgx batch.

Statements in a batch execute in queue order, so BIGSERIAL ids follow the
input order.
*/
func (store *PostgresStore) Insert(context context.Context, table schema.MovieCreditTable, movieID int64, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var insertQuery string
	if table.Ranked() {
		insertQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
			table.Table, table.MovieID, table.PersonID, table.Role, table.Rank)
	} else {
		insertQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
			table.Table, table.MovieID, table.PersonID, table.Role)
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		if table.Ranked() {
			batch.Queue(insertQuery, movieID, row.Person.ID, row.Role, row.Rank)
		} else {
			batch.Queue(insertQuery, movieID, row.Person.ID, row.Role)
		}
	}

	response := store.db.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, resourceCredit, "insert_"+table.Table)
	}

	return nil
}

// DeletePerson implements [Store].
func (store *PostgresStore) DeletePerson(context context.Context, table schema.MovieCreditTable, movieID, personID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, table.Table, table.MovieID, table.PersonID)

	tag, err := store.db.Exec(context, query, movieID, personID)
	if err != nil {
		return 0, dberr.Wrap(err, resourceCredit, "delete_person_"+table.Table)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll implements [Store].
func (store *PostgresStore) DeleteAll(context context.Context, table schema.MovieCreditTable, movieID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.MovieID)

	tag, err := store.db.Exec(context, query, movieID)
	if err != nil {
		return 0, dberr.Wrap(err, resourceCredit, "clear_"+table.Table)
	}
	return tag.RowsAffected(), nil
}
