// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by [pgxpool.Pool] and [pgx.Tx].
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, batch *pgx.Batch) pgx.BatchResults
}

// TxBeginner starts a transaction. Satisfied by [pgxpool.Pool].
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

/*
WithTx runs fn inside a single transaction.

The transaction commits only when fn returns nil. Any error, panic or
context cancellation rolls the whole unit of work back, so callers never
observe a half-applied mutation.

Returns:
  - error: fn's error unchanged, or a wrapped begin/commit failure
*/
func WithTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	transaction, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}

	// Rollback after a successful Commit is a no-op.
	defer func() { _ = transaction.Rollback(ctx) }()

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit transaction: %w", err)
	}

	return nil
}
