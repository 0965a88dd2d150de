// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres owns the pgx pool behind every Cinedex repository and the
// [WithTx] helper that gives each roster call its single transaction.
//
// A roster mutation holds one connection for its whole unit of work: person
// lookups and inserts, the movie load, the association rewrite. The pool is
// sized for many such short transactions rather than long analytic reads.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/cinedex/internal/platform/constants"
)

const (
	maxConns          = 20
	minConns          = 2
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 10 * time.Minute
	healthCheckPeriod = time.Minute
	connectTimeout    = 5 * time.Second
	pingTimeout       = 2 * time.Second
)

// NewPool connects to dsn, tunes the pool for roster transactions and pings
// it once before returning.
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := Configure(dsn)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(poolConfig.MaxConns)),
	)
	return pool, nil
}

// Configure parses dsn and applies the Cinedex pool settings.
//
// Sessions are tagged with the application name so roster transactions are
// easy to find in pg_stat_activity, and every statement is capped by the
// request deadline.
func Configure(dsn string) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	params := poolConfig.ConnConfig.RuntimeParams
	if params["application_name"] == "" {
		params["application_name"] = constants.AppName
	}
	params["statement_timeout"] = strconv.FormatInt(constants.GlobalRequestTimeout.Milliseconds(), 10)

	return poolConfig, nil
}

// Ping checks the pool within a short deadline; /ready and startup use it.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}
