// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import "context"

// Repository is the persistence contract for persons.
type Repository interface {
	// FindByID returns apperr NOT_FOUND when the id does not exist.
	FindByID(context context.Context, id int64) (*Person, error)

	// Insert persists a new row and fills ID and timestamps on p.
	Insert(context context.Context, p *Person) error

	// Search returns one page of persons plus the total match count.
	Search(context context.Context, filter Filter, limit, offset int) ([]*Person, int, error)
}
