// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cinedex/internal/platform/database/schema"
	"github.com/taibuivan/cinedex/internal/platform/dberr"
	"github.com/taibuivan/cinedex/internal/platform/postgres"
	"github.com/taibuivan/cinedex/pkg/slug"
)

const resourcePerson = "Person"

// PostgresRepository implements [Repository] on core.person.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository binds the repository to a pool or a transaction.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectPerson = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CorePerson.Columns(), ", "), schema.CorePerson.Table)

/*
FindByID fetches a single person by primary key.

Returns:
  - *Person: The persisted record
  - error: apperr.NotFound("Person") when no row matches
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Person, error) {
	query := selectPerson + fmt.Sprintf(` WHERE %s = $1`, schema.CorePerson.ID)

	person, err := scanPerson(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePerson, "find_person")
	}
	return person, nil
}

/*
Insert persists a new person.

The accent-folded search name is derived from Name so lookups match
"Agnes" against "Agnès".
*/
func (repository *PostgresRepository) Insert(context context.Context, p *Person) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		schema.CorePerson.Table,
		schema.CorePerson.Name, schema.CorePerson.SearchName, schema.CorePerson.DateOfBirth,
		schema.CorePerson.DateOfDeath, schema.CorePerson.PhotoURL,
		schema.CorePerson.ID, schema.CorePerson.CreatedAt, schema.CorePerson.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.Name, slug.From(p.Name), p.DateOfBirth, p.DateOfDeath, p.PhotoURL,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, resourcePerson, "insert_person")
}

// Search lists persons ordered by name, filtered on the folded search name.
func (repository *PostgresRepository) Search(context context.Context, filter Filter, limit, offset int) ([]*Person, int, error) {
	where := ""
	args := []any{}

	if folded := slug.From(filter.Query); folded != "" {
		// slug output is [a-z0-9-] only, so it is safe inside a LIKE pattern.
		where = fmt.Sprintf(` WHERE %s LIKE $1`, schema.CorePerson.SearchName)
		args = append(args, "%"+folded+"%")
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CorePerson.Table) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourcePerson, "count_persons")
	}

	query := selectPerson + where + fmt.Sprintf(` ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d`,
		schema.CorePerson.Name, schema.CorePerson.ID, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourcePerson, "search_persons")
	}
	defer rows.Close()

	persons := make([]*Person, 0, limit)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourcePerson, "scan_person")
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourcePerson, "search_persons")
	}

	return persons, total, nil
}

func scanPerson(row pgx.Row) (*Person, error) {
	p := &Person{}
	err := row.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.DateOfDeath, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
