// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Cinedex HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/cinedex/internal/api"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/core/roster"
	"github.com/taibuivan/cinedex/internal/platform/config"
	"github.com/taibuivan/cinedex/internal/platform/constants"
	"github.com/taibuivan/cinedex/internal/platform/migration"
	pgstore "github.com/taibuivan/cinedex/internal/platform/postgres"
	redisstore "github.com/taibuivan/cinedex/internal/platform/redis"
	"github.com/taibuivan/cinedex/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(os.Stdout, slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Cinedex] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(os.Stdout, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Misconfiguration should fail fast rather than hang.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var (
		notifier   roster.Notifier
		checkCache func() error
	)
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		notifier = roster.NewRedisNotifier(rdb, constants.RedisChannelRosterChanged)
		checkCache = func() error { return redisstore.Ping(context.Background(), rdb) }
	} else {
		log.Info("roster_notifications_disabled")
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token verification ─────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "initialize jwt verifier")

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: checkCache,
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	personService := person.NewService(person.NewPostgresRepository(pool), log)
	rosterServices := roster.NewServices(roster.NewRegistry(), roster.NewPostgresTransactor(pool), notifier, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	server := api.NewServer(rootCtx, cfg, log, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Person:    person.NewHandler(personService),
		Roster:    roster.NewHandler(rosterServices),
	})

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(out io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
}

func closeRedis(log *slog.Logger, rdb *goredis.Client) {
	log.Info("closing redis client")
	if err := rdb.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
