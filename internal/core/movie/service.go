// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/cinedex/internal/platform/validate"
)

const maxTitleLength = 255

// Service creates movies for operators and fixtures. Catalog CRUD lives elsewhere.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
Create validates and persists a new movie.

Parameters:
  - context: context.Context
  - title: required display title
  - originalTitle: optional title in the original language
  - releaseDate: optional release date

Returns:
  - *Movie: The persisted movie with ID populated
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) Create(context context.Context, title string, originalTitle *string, releaseDate *time.Time) (*Movie, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, maxTitleLength)
	if originalTitle != nil {
		validator.MaxLen("original_title", *originalTitle, maxTitleLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	m := &Movie{Title: title, OriginalTitle: originalTitle, ReleaseDate: releaseDate}
	if err := service.repo.Create(context, m); err != nil {
		return nil, err
	}

	service.logger.Info("movie_created", slog.Int64("movie_id", m.ID), slog.String("title", m.Title))
	return m, nil
}
