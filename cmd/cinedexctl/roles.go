// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/taibuivan/cinedex/internal/core/roster"
)

func rolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List every role type with its URL label and table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := roster.NewRegistry().Roles()
			return render(cmd, roles, func(tw table.Writer) {
				tw.AppendHeader(table.Row{"Type", "Label", "Table", "Ranked"})
				for _, role := range roles {
					tw.AppendRow(table.Row{role.Type, role.Label, role.Table, role.Ranked})
				}
			})
		},
	}
}
