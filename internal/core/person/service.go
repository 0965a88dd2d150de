// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"context"
	"log/slog"

	"github.com/taibuivan/cinedex/internal/platform/validate"
)

// Service serves read-only person lookups for the roster editor's person picker.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns one person by id.
func (service *Service) Get(context context.Context, id int64) (*Person, error) {
	validator := &validate.Validator{}
	if err := validator.Positive(FieldID, id).Err(); err != nil {
		return nil, err
	}
	return service.repo.FindByID(context, id)
}

// Search returns one page of persons whose folded name contains the query.
func (service *Service) Search(context context.Context, filter Filter, limit, offset int) ([]*Person, int, error) {
	return service.repo.Search(context, filter, limit, offset)
}
