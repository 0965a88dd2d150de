// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/cinedex/internal/core/roster"
	"github.com/taibuivan/cinedex/internal/platform/config"
	"github.com/taibuivan/cinedex/internal/platform/constants"
	pgstore "github.com/taibuivan/cinedex/internal/platform/postgres"
	redisstore "github.com/taibuivan/cinedex/internal/platform/redis"
)

// env is what a database-backed subcommand gets to work with.
type env struct {
	cfg      *config.Config
	log      *slog.Logger
	pool     *pgxpool.Pool
	notifier roster.Notifier
}

// newLogger logs to stderr so stdout stays parseable.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "cinedexctl"))
}

// withEnv loads the database settings, connects and runs fn.
func withEnv(ctx context.Context, fn func(ctx context.Context, e *env) error) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	log := newLogger(os.Getenv("CINEDEX_VERBOSE") != "")

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	e := &env{cfg: cfg, log: log, pool: pool}

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		e.notifier = roster.NewRedisNotifier(rdb, constants.RedisChannelRosterChanged)
	}

	return fn(ctx, e)
}
