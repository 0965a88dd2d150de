// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package roster manages the Movie to Person associations across every role type.

Architecture:

  - Descriptor: static per-role metadata (accessor, factory, messages, table).
  - Registry: the fixed table of descriptors, built once at startup.
  - associations: the role-scoped Association Store on top of [Store].
  - Service: the generic verbs (get, replace, add, remove one, clear).

One generic [Service] serves all nineteen role types. Role-specific behavior
lives in descriptor data, never in per-role methods.
*/
package roster

import (
	"fmt"
	"time"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/database/schema"
	"github.com/taibuivan/cinedex/internal/platform/validate"
	"github.com/taibuivan/cinedex/pkg/pointer"
)

const maxRoleLabelLength = 255

// # Payloads

// Input is a single roster payload entry.
type Input interface {
	// PersonInput returns the person reference to resolve.
	PersonInput() person.Input
	// Validate checks the entry's own fields, reporting them under field.
	Validate(validator *validate.Validator, field string)
}

// CreditInput is a crew roster entry.
type CreditInput struct {
	Person person.Input `json:"person"`
	Role   string       `json:"role"`
}

func (in CreditInput) PersonInput() person.Input { return in.Person }

func (in CreditInput) Validate(validator *validate.Validator, field string) {
	validator.MaxLen(field+".role", in.Role, maxRoleLabelLength)
}

// CastInput is an actor roster entry. Rank is the billing position.
type CastInput struct {
	Person person.Input `json:"person"`
	Role   string       `json:"role"`
	Rank   int          `json:"rank"`
}

func (in CastInput) PersonInput() person.Input { return in.Person }

func (in CastInput) Validate(validator *validate.Validator, field string) {
	validator.MaxLen(field+".role", in.Role, maxRoleLabelLength).Min(field+".rank", in.Rank, 0)
}

// # Rows and DTOs

// Row is the role-agnostic shape of one association table row.
// Rank is meaningful only on ranked tables.
type Row struct {
	ID        int64
	MovieID   int64
	Person    person.Person
	Role      string
	Rank      int
	CreatedAt time.Time
}

// Entry is the wire projection of one association.
type Entry struct {
	ID     int64          `json:"id" yaml:"id"`
	Person person.Summary `json:"person" yaml:"person"`
	Role   string         `json:"role" yaml:"role"`
	Rank   *int           `json:"rank,omitempty" yaml:"rank,omitempty"`
}

// # Descriptor

// Descriptor binds one role type to its association type A and payload type I.
type Descriptor[A any, I Input] struct {
	Type movie.RoleType
	// Label is the plural URL segment, e.g. "assistant-directors".
	Label string
	Table schema.MovieCreditTable

	NullMessage    string
	FailureMessage string

	// Roster returns the address of the role's collection on a movie.
	Roster func(m *movie.Movie) *[]A
	// Build creates a new, unsaved association.
	Build func(m *movie.Movie, p *person.Person, in I) A

	PersonID func(a A) int64
	ToRow    func(a A) Row
	FromRow  func(row Row) A
}

// CrewDescriptor describes a technician role.
type CrewDescriptor = Descriptor[movie.Credit, CreditInput]

// CastDescriptor describes the ranked actor role.
type CastDescriptor = Descriptor[movie.CastMember, CastInput]

// Ranked reports whether the role carries a billing order.
func (descriptor *Descriptor[A, I]) Ranked() bool {
	return descriptor.Table.Ranked()
}

func (descriptor *Descriptor[A, I]) present(items []A) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		row := descriptor.ToRow(item)
		entry := Entry{ID: row.ID, Person: row.Person.Summary(), Role: row.Role}
		if descriptor.Ranked() {
			entry.Rank = pointer.To(row.Rank)
		}
		entries = append(entries, entry)
	}
	return entries
}

func newCrewDescriptor(roleType movie.RoleType, label, noun string, table schema.MovieCreditTable, roster func(*movie.Movie) *[]movie.Credit) *CrewDescriptor {
	return &CrewDescriptor{
		Type:           roleType,
		Label:          label,
		Table:          table,
		NullMessage:    fmt.Sprintf("%s list must not be null", noun),
		FailureMessage: fmt.Sprintf("Failed to update the %s of the movie", noun),
		Roster:         roster,
		Build: func(m *movie.Movie, p *person.Person, in CreditInput) movie.Credit {
			return movie.Credit{MovieID: m.ID, Person: *p, Role: in.Role}
		},
		PersonID: func(credit movie.Credit) int64 { return credit.Person.ID },
		ToRow:    creditToRow,
		FromRow:  creditFromRow,
	}
}

func newCastDescriptor() *CastDescriptor {
	return &CastDescriptor{
		Type:           movie.RoleActor,
		Label:          "actors",
		Table:          schema.MovieActor,
		NullMessage:    "actors list must not be null",
		FailureMessage: "Failed to update the actors of the movie",
		Roster:         func(m *movie.Movie) *[]movie.CastMember { return &m.Cast },
		Build: func(m *movie.Movie, p *person.Person, in CastInput) movie.CastMember {
			return movie.CastMember{
				Credit: movie.Credit{MovieID: m.ID, Person: *p, Role: in.Role},
				Rank:   in.Rank,
			}
		},
		PersonID: func(member movie.CastMember) int64 { return member.Person.ID },
		ToRow: func(member movie.CastMember) Row {
			row := creditToRow(member.Credit)
			row.Rank = member.Rank
			return row
		},
		FromRow: func(row Row) movie.CastMember {
			return movie.CastMember{Credit: creditFromRow(row), Rank: row.Rank}
		},
	}
}

func creditToRow(credit movie.Credit) Row {
	return Row{
		ID:        credit.ID,
		MovieID:   credit.MovieID,
		Person:    credit.Person,
		Role:      credit.Role,
		CreatedAt: credit.CreatedAt,
	}
}

func creditFromRow(row Row) movie.Credit {
	return movie.Credit{
		ID:        row.ID,
		MovieID:   row.MovieID,
		Person:    row.Person,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}
}
