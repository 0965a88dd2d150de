// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/pkg/pointer"
)

type movieView struct {
	ID            int64   `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	OriginalTitle *string `json:"original_title,omitempty" yaml:"original_title,omitempty"`
	ReleaseDate   *string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
}

func newMovieView(m *movie.Movie) movieView {
	view := movieView{ID: m.ID, Title: m.Title, OriginalTitle: m.OriginalTitle}
	if m.ReleaseDate != nil {
		view.ReleaseDate = pointer.To(m.ReleaseDate.Format(person.DateLayout))
	}
	return view
}

func moviesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "movies", Short: "Manage movies"}
	cmd.AddCommand(moviesCreateCmd())
	return cmd
}

func moviesCreateCmd() *cobra.Command {
	var title, originalTitle, releaseDate string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a movie",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("--title required")
			}

			var released *time.Time
			if releaseDate != "" {
				parsed, err := time.Parse(person.DateLayout, releaseDate)
				if err != nil {
					return fmt.Errorf("--release-date must be YYYY-MM-DD")
				}
				released = &parsed
			}

			var original *string
			if originalTitle != "" {
				original = &originalTitle
			}

			return withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				service := movie.NewService(movie.NewPostgresRepository(e.pool), e.log)
				created, err := service.Create(ctx, title, original, released)
				if err != nil {
					return err
				}

				view := newMovieView(created)
				return render(cmd, view, func(tw table.Writer) {
					tw.AppendHeader(table.Row{"ID", "Title", "Original Title", "Release Date"})
					tw.AppendRow(table.Row{view.ID, view.Title, pointer.Val(view.OriginalTitle), pointer.Val(view.ReleaseDate)})
				})
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "display title")
	cmd.Flags().StringVar(&originalTitle, "original-title", "", "title in the original language")
	cmd.Flags().StringVar(&releaseDate, "release-date", "", "release date (YYYY-MM-DD)")
	return cmd
}
