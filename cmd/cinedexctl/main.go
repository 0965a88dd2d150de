// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command cinedexctl is the operator CLI for Cinedex.
//
// It talks to PostgreSQL directly (DATABASE_URL) and reuses the same
// services as the API, so roster edits made here follow the same rules and
// emit the same notifications.
//
//	cinedexctl migrate up
//	cinedexctl roles -o yaml
//	cinedexctl movies create --title "Cléo from 5 to 7" --release-date 1962-04-11
//	cinedexctl roster add --movie 1 --role director --name "Agnès Varda"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cinedexctl",
		Short:         "Cinedex operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("output", "o", formatTable, "output format (table, json, yaml)")

	root.AddCommand(migrateCmd())
	root.AddCommand(rolesCmd())
	root.AddCommand(moviesCmd())
	root.AddCommand(rosterCmd())
	return root
}
