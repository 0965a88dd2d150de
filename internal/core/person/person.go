// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package person owns the Person identity entity shared by every movie roster.

A Person exists independently of any movie: many rosters may reference the
same row. This package never deletes persons and never updates them on
behalf of a roster mutation.
*/
package person

import (
	"time"

	"github.com/taibuivan/cinedex/pkg/pointer"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Field names used in validation errors.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDateOfBirth = "date_of_birth"
	FieldDateOfDeath = "date_of_death"
	FieldPhotoURL    = "photo_url"
)

// Length limits mirrored by the core.person columns.
const (
	MaxNameLength     = 255
	MaxPhotoURLLength = 2048
)

// Person is a persisted human credited on one or more movies.
type Person struct {
	ID          int64
	Name        string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	PhotoURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary is the light projection embedded in roster responses.
type Summary struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	PhotoURL    *string `json:"photo_url" yaml:"photo_url"`
	DateOfBirth *string `json:"date_of_birth" yaml:"date_of_birth"`
	DateOfDeath *string `json:"date_of_death" yaml:"date_of_death"`
}

// Summary projects the person for the wire.
func (p *Person) Summary() Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		PhotoURL:    p.PhotoURL,
		DateOfBirth: formatDate(p.DateOfBirth),
		DateOfDeath: formatDate(p.DateOfDeath),
	}
}

// Input is a person reference inside a roster payload: either an existing
// id or the fields of a person to create.
type Input struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	DateOfDeath *string `json:"date_of_death,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

// Existing builds an Input referencing a persisted person.
func Existing(id int64) Input {
	return Input{ID: pointer.To(id)}
}

// Filter holds the parameters for a paginated person search.
type Filter struct {
	// Query is matched against the accent-folded name.
	Query string
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	return pointer.To(value.Format(DateLayout))
}
