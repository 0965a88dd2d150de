// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/core/roster"
)

// rosterOps erases the cast/crew type split so each subcommand is written once.
type rosterOps struct {
	get    func(ctx context.Context, movieID int64) ([]roster.Entry, error)
	add    func(ctx context.Context, movieID int64, who person.Input, role string, rank int) ([]roster.Entry, error)
	remove func(ctx context.Context, movieID, personID int64) ([]roster.Entry, error)
	clear  func(ctx context.Context, movieID int64) (bool, error)
}

// rosterFor accepts a role type ("director") or its URL label ("directors").
func rosterFor(services *roster.Services, role string) (rosterOps, error) {
	roleType := movie.RoleType(role)
	if byLabel, ok := services.Registry.ByLabel(role); ok {
		roleType = byLabel
	}

	if roleType == movie.RoleActor {
		cast := services.Cast
		return rosterOps{
			get: cast.GetByMovie,
			add: func(ctx context.Context, movieID int64, who person.Input, role string, rank int) ([]roster.Entry, error) {
				return cast.Add(ctx, movieID, []roster.CastInput{{Person: who, Role: role, Rank: rank}})
			},
			remove: cast.RemoveOne,
			clear:  cast.Clear,
		}, nil
	}

	crew, err := services.Crew(roleType)
	if err != nil {
		return rosterOps{}, fmt.Errorf("unknown role %q (see cinedexctl roles)", role)
	}
	return rosterOps{
		get: crew.GetByMovie,
		add: func(ctx context.Context, movieID int64, who person.Input, role string, _ int) ([]roster.Entry, error) {
			return crew.Add(ctx, movieID, []roster.CreditInput{{Person: who, Role: role}})
		},
		remove: crew.RemoveOne,
		clear:  crew.Clear,
	}, nil
}

func rosterCmd() *cobra.Command {
	var movieID int64
	var role string

	cmd := &cobra.Command{Use: "roster", Short: "Inspect and edit a movie's cast and crew"}
	cmd.PersistentFlags().Int64Var(&movieID, "movie", 0, "movie id")
	cmd.PersistentFlags().StringVar(&role, "role", "", "role type or label, e.g. director or assistant-directors")
	_ = cmd.MarkPersistentFlagRequired("movie")
	_ = cmd.MarkPersistentFlagRequired("role")

	// run resolves the roster operations and hands them to fn.
	run := func(cmd *cobra.Command, fn func(ctx context.Context, ops rosterOps) error) error {
		return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
			services := roster.NewServices(roster.NewRegistry(), roster.NewPostgresTransactor(e.pool), e.notifier, e.log)
			ops, err := rosterFor(services, role)
			if err != nil {
				return err
			}
			return fn(ctx, ops)
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show a roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, ops rosterOps) error {
				entries, err := ops.get(ctx, movieID)
				if err != nil {
					return err
				}
				return renderEntries(cmd, entries)
			})
		},
	})

	cmd.AddCommand(rosterAddCmd(run, &movieID))

	cmd.AddCommand(&cobra.Command{
		Use:   "remove PERSON_ID",
		Short: "Remove every credit of a person from a roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var personID int64
			if _, err := fmt.Sscan(args[0], &personID); err != nil {
				return fmt.Errorf("PERSON_ID must be an integer")
			}
			return run(cmd, func(ctx context.Context, ops rosterOps) error {
				entries, err := ops.remove(ctx, movieID, personID)
				if err != nil {
					return err
				}
				return renderEntries(cmd, entries)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty a roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, ops rosterOps) error {
				if _, err := ops.clear(ctx, movieID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "roster cleared")
				return nil
			})
		},
	})

	return cmd
}

func rosterAddCmd(run func(*cobra.Command, func(context.Context, rosterOps) error) error, movieID *int64) *cobra.Command {
	var (
		personID     int64
		name, credit string
		rank         int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Credit an existing person (--person-id) or a new one (--name)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var who person.Input
			switch {
			case personID != 0:
				who = person.Existing(personID)
			case name != "":
				who = person.Input{Name: name}
			default:
				return fmt.Errorf("--person-id or --name required")
			}

			return run(cmd, func(ctx context.Context, ops rosterOps) error {
				entries, err := ops.add(ctx, *movieID, who, credit, rank)
				if err != nil {
					return err
				}
				return renderEntries(cmd, entries)
			})
		},
	}
	cmd.Flags().Int64Var(&personID, "person-id", 0, "id of an existing person")
	cmd.Flags().StringVar(&name, "name", "", "name of a person to create")
	cmd.Flags().StringVar(&credit, "credit", "", "free-text credit, e.g. a character name")
	cmd.Flags().IntVar(&rank, "rank", 0, "billing rank (actors only)")
	return cmd
}

func renderEntries(cmd *cobra.Command, entries []roster.Entry) error {
	return render(cmd, entries, func(tw table.Writer) {
		tw.AppendHeader(table.Row{"ID", "Person ID", "Name", "Role", "Rank"})
		for _, entry := range entries {
			rank := ""
			if entry.Rank != nil {
				rank = fmt.Sprint(*entry.Rank)
			}
			tw.AppendRow(table.Row{entry.ID, entry.Person.ID, entry.Person.Name, entry.Role, rank})
		}
	})
}
