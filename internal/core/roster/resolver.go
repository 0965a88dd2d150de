// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/validate"
)

// Resolver turns a roster payload's person reference into a persisted person.
//
// It never updates or deletes an existing person and never deduplicates by
// name: two payloads without an id produce two distinct rows.
type Resolver struct {
	persons person.Repository
	logger  *slog.Logger
}

// NewResolver binds a resolver to a person repository, usually transaction scoped.
func NewResolver(persons person.Repository, logger *slog.Logger) *Resolver {
	return &Resolver{persons: persons, logger: logger}
}

/*
Resolve finds or creates the person referenced by input.

roleType is accepted for role-specific rules; no role currently changes
resolution.

Returns:
  - *person.Person: The existing or newly inserted person
  - error: VALIDATION_ERROR for a bad id or bad new-person fields,
    NOT_FOUND for an unknown id
*/
func (resolver *Resolver) Resolve(context context.Context, input person.Input, roleType movie.RoleType) (*person.Person, error) {
	if input.ID != nil {
		validator := &validate.Validator{}
		if err := validator.Positive(person.FieldID, *input.ID).Err(); err != nil {
			return nil, err
		}
		return resolver.persons.FindByID(context, *input.ID)
	}

	candidate, err := newPerson(input)
	if err != nil {
		return nil, err
	}

	if err := resolver.persons.Insert(context, candidate); err != nil {
		return nil, err
	}

	resolver.logger.InfoContext(context, "person_created",
		slog.Int64("person_id", candidate.ID),
		slog.String("role", roleType.String()),
	)
	return candidate, nil
}

func newPerson(input person.Input) (*person.Person, error) {
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(person.FieldName, name).MaxLen(person.FieldName, name, person.MaxNameLength)

	birth := parseDate(validator, person.FieldDateOfBirth, input.DateOfBirth)
	death := parseDate(validator, person.FieldDateOfDeath, input.DateOfDeath)
	if birth != nil && death != nil {
		validator.Custom(person.FieldDateOfDeath, death.Before(*birth), "Must not precede date_of_birth")
	}

	if input.PhotoURL != nil {
		validator.MaxLen(person.FieldPhotoURL, *input.PhotoURL, person.MaxPhotoURLLength).
			URL(person.FieldPhotoURL, *input.PhotoURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &person.Person{
		Name:        name,
		DateOfBirth: birth,
		DateOfDeath: death,
		PhotoURL:    input.PhotoURL,
	}, nil
}

func parseDate(validator *validate.Validator, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}

	parsed, err := time.Parse(person.DateLayout, *value)
	if err != nil {
		validator.Custom(field, true, "Must be a date formatted YYYY-MM-DD")
		return nil
	}
	return &parsed
}
