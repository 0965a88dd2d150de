// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration provides a thin wrapper around golang-migrate for
// running database schema migrations.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. The API server applies
// pending migrations at startup and cinedexctl exposes the same runner to
// operators, so both paths share one implementation.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Status describes the schema version recorded in the database.
type Status struct {
	Version uint `json:"version" yaml:"version"`
	Dirty   bool `json:"dirty" yaml:"dirty"`
}

// RunUp applies all pending UP migrations.
//
// # Parameters
//   - dsn: A libpq-compatible DSN or postgres:// URL.
//   - migrationsPath: Filesystem path to the migrations directory.
//   - logger: Structured logger for migration events.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := open(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	currentVersion, isDirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}

	if isDirty {
		return fmt.Errorf("migration: database is in a dirty state at version %d (manual intervention required)", currentVersion)
	}

	logger.Info("migration_started", slog.Int("current_version", int(currentVersion)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	newVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Int("from_version", int(currentVersion)),
		slog.Int("to_version", int(newVersion)),
	)

	return nil
}

// RunDown rolls back the given number of migrations (steps > 0).
func RunDown(dsn string, migrationsPath string, steps int, logger *slog.Logger) error {
	if steps <= 0 {
		return fmt.Errorf("migration: steps must be positive, got %d", steps)
	}

	migrator, err := open(dsn, migrationsPath, logger)
	if err != nil {
		return err
	}
	defer closeMigrator(migrator, logger)

	if err := migrator.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: down failed: %w", err)
	}

	logger.Info("migration_rolled_back", slog.Int("steps", steps))
	return nil
}

// CurrentStatus reports the applied version. A fresh database reports version 0.
func CurrentStatus(dsn string, migrationsPath string, logger *slog.Logger) (Status, error) {
	migrator, err := open(dsn, migrationsPath, logger)
	if err != nil {
		return Status{}, err
	}
	defer closeMigrator(migrator, logger)

	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("migration: failed to get current version: %w", err)
	}

	return Status{Version: version, Dirty: dirty}, nil
}

func open(dsn string, migrationsPath string, logger *slog.Logger) (*migrate.Migrate, error) {
	migrator, err := migrate.New("file://"+migrationsPath, convertToPgx5DSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: failed to initialize: %w", err)
	}

	migrator.Log = &migrateLogger{logger: logger}
	return migrator, nil
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceError, dbError := migrator.Close()
	if sourceError != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", sourceError))
	}
	if dbError != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", dbError))
	}
}

// convertToPgx5DSN ensures the DSN uses the pgx5:// scheme required by golang-migrate/v4.
func convertToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger adapts golang-migrate's logger interface to slog.
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

// Printf implements migrate.Logger.
func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Verbose implements migrate.Logger.
func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
