// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/pkg/slice"
)

// associations is the Association Store for one role type. It must be used
// inside the transaction that owns store.
type associations[A any, I Input] struct {
	descriptor *Descriptor[A, I]
	store      Store
}

func newAssociations[A any, I Input](descriptor *Descriptor[A, I], store Store) *associations[A, I] {
	return &associations[A, I]{descriptor: descriptor, store: store}
}

// Hydrate loads the role's persisted rows into the movie's collection.
// The collection is non-nil afterwards, even when empty.
func (assoc *associations[A, I]) Hydrate(context context.Context, m *movie.Movie) error {
	rows, err := assoc.store.List(context, assoc.descriptor.Table, m.ID)
	if err != nil {
		return err
	}

	items := make([]A, 0, len(rows))
	for _, row := range rows {
		items = append(items, assoc.descriptor.FromRow(row))
	}
	*assoc.descriptor.Roster(m) = items
	return nil
}

/*
ReplaceAll overwrites the roster with items, in order.

Returns:
  - []A: The persisted roster
  - error: apperr.Conflict(NullMessage) when the movie's collection was never loaded
*/
func (assoc *associations[A, I]) ReplaceAll(context context.Context, m *movie.Movie, items []A) ([]A, error) {
	if *assoc.descriptor.Roster(m) == nil {
		return nil, apperr.Conflict(assoc.descriptor.NullMessage)
	}

	if err := assoc.store.Replace(context, assoc.descriptor.Table, m.ID, slice.Map(items, assoc.descriptor.ToRow)); err != nil {
		return nil, err
	}
	return assoc.reload(context, m)
}

// AddMany appends items after the existing rows. Duplicates accumulate.
func (assoc *associations[A, I]) AddMany(context context.Context, m *movie.Movie, items []A) ([]A, error) {
	if err := assoc.store.Insert(context, assoc.descriptor.Table, m.ID, slice.Map(items, assoc.descriptor.ToRow)); err != nil {
		return nil, err
	}
	return assoc.reload(context, m)
}

// RemoveOne deletes the rows referencing personID. No match leaves the roster unchanged.
func (assoc *associations[A, I]) RemoveOne(context context.Context, m *movie.Movie, personID int64) ([]A, error) {
	if _, err := assoc.store.DeletePerson(context, assoc.descriptor.Table, m.ID, personID); err != nil {
		return nil, err
	}
	return assoc.reload(context, m)
}

// ClearAll deletes every row of the role. Clearing an empty roster succeeds.
func (assoc *associations[A, I]) ClearAll(context context.Context, m *movie.Movie) (bool, error) {
	if _, err := assoc.store.DeleteAll(context, assoc.descriptor.Table, m.ID); err != nil {
		return false, err
	}
	*assoc.descriptor.Roster(m) = []A{}
	return true, nil
}

func (assoc *associations[A, I]) reload(context context.Context, m *movie.Movie) ([]A, error) {
	if err := assoc.Hydrate(context, m); err != nil {
		return nil, err
	}
	return *assoc.descriptor.Roster(m), nil
}
