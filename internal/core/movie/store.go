// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository is the persistence contract for the movie row itself.
// Roster collections are loaded by the roster engine.
type Repository interface {
	// LoadForUpdate loads the movie that a roster mutation will modify.
	// It returns apperr NOT_FOUND when the id does not exist.
	LoadForUpdate(context context.Context, id int64) (*Movie, error)

	// Create persists a new movie and fills ID and timestamps.
	Create(context context.Context, m *Movie) error
}
