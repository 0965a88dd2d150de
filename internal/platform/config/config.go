// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Cinedex API server and CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL enables roster change notifications. Empty disables them.
	RedisURL string `env:"REDIS_URL"`

	// Access tokens are issued by the identity provider; we only verify them.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"cinedex.app"`

	// Cross-Origin Resource Sharing, comma separated origin suffixes.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if a 'required' variable is unset or a 'notEmpty' one is blank.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// LoadDatabase parses only what the operator CLI needs to reach PostgreSQL.
func LoadDatabase() (*Config, error) {
	var db struct {
		DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
		MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
		RedisURL      string `env:"REDIS_URL"`
	}
	if err := env.Parse(&db); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return &Config{
		DatabaseURL:   db.DatabaseURL,
		MigrationPath: db.MigrationPath,
		RedisURL:      db.RedisURL,
		Environment:   "cli",
	}, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the trimmed, non-empty entries of ExtraOrigins.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
