// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/taibuivan/cinedex/internal/platform/config"
	"github.com/taibuivan/cinedex/internal/platform/migration"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "migrate", Short: "Manage the database schema"}
	cmd.AddCommand(migrateUpCmd())
	cmd.AddCommand(migrateDownCmd())
	cmd.AddCommand(migrateStatusCmd())
	return cmd
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, newLogger(true)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func migrateDownCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			if err := migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, steps, newLogger(true)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rolled back %d migration(s)\n", steps)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDatabase()
			if err != nil {
				return err
			}
			status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, newLogger(os.Getenv("CINEDEX_VERBOSE") != ""))
			if err != nil {
				return err
			}
			return render(cmd, status, func(tw table.Writer) {
				tw.AppendHeader(table.Row{"Version", "Dirty"})
				tw.AppendRow(table.Row{status.Version, status.Dirty})
			})
		},
	}
}
