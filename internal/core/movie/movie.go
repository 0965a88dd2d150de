// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie defines the Movie aggregate and its per-role credit collections.

Each professional role type owns its own collection on [Movie]. A nil
collection means "not loaded"; a non-nil empty slice means "loaded, no
credits". Only the roster engine and [Repository] mutate these collections.
*/
package movie

import (
	"slices"
	"time"

	"github.com/taibuivan/cinedex/internal/core/person"
)

// RoleType identifies one professional category credited on a movie.
type RoleType string

// The closed set of role types. RoleActor is the only ranked one.
const (
	RoleActor             RoleType = "actor"
	RoleDirector          RoleType = "director"
	RoleAssistantDirector RoleType = "assistant_director"
	RoleScreenwriter      RoleType = "screenwriter"
	RoleComposer          RoleType = "composer"
	RoleMusician          RoleType = "musician"
	RolePhotographer      RoleType = "photographer"
	RoleCostumeDesigner   RoleType = "costume_designer"
	RoleSetDesigner       RoleType = "set_designer"
	RoleEditor            RoleType = "editor"
	RoleCaster            RoleType = "caster"
	RoleArtist            RoleType = "artist"
	RoleSoundEditor       RoleType = "sound_editor"
	RoleVFXSupervisor     RoleType = "vfx_supervisor"
	RoleSFXSupervisor     RoleType = "sfx_supervisor"
	RoleMakeupArtist      RoleType = "makeup_artist"
	RoleHairDresser       RoleType = "hair_dresser"
	RoleStuntman          RoleType = "stuntman"
	RoleProducer          RoleType = "producer"
)

var crewRoleTypes = []RoleType{
	RoleDirector, RoleAssistantDirector, RoleScreenwriter, RoleComposer,
	RoleMusician, RolePhotographer, RoleCostumeDesigner, RoleSetDesigner,
	RoleEditor, RoleCaster, RoleArtist, RoleSoundEditor, RoleVFXSupervisor,
	RoleSFXSupervisor, RoleMakeupArtist, RoleHairDresser, RoleStuntman,
	RoleProducer,
}

// CrewRoleTypes returns every non-ranked role type in display order.
func CrewRoleTypes() []RoleType {
	return slices.Clone(crewRoleTypes)
}

// IsCrew reports whether r is one of the technician role types.
func (r RoleType) IsCrew() bool {
	return slices.Contains(crewRoleTypes, r)
}

func (r RoleType) String() string {
	return string(r)
}

// Credit links one person to a movie under a crew role type.
type Credit struct {
	ID      int64
	MovieID int64
	Person  person.Person
	// Role is the free-text credited function, e.g. "Second unit".
	Role      string
	CreatedAt time.Time
}

// CastMember is an actor credit with a billing position.
type CastMember struct {
	Credit
	Rank int
}

// Movie is the aggregate root holding every roster.
type Movie struct {
	ID            int64
	Title         string
	OriginalTitle *string
	ReleaseDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cast []CastMember

	Directors          []Credit
	AssistantDirectors []Credit
	Screenwriters      []Credit
	Composers          []Credit
	Musicians          []Credit
	Photographers      []Credit
	CostumeDesigners   []Credit
	SetDesigners       []Credit
	Editors            []Credit
	Casters            []Credit
	Artists            []Credit
	SoundEditors       []Credit
	VFXSupervisors     []Credit
	SFXSupervisors     []Credit
	MakeupArtists      []Credit
	HairDressers       []Credit
	Stuntmen           []Credit
	Producers          []Credit
}

// Field names used in validation errors.
const (
	FieldID    = "movie_id"
	FieldTitle = "title"
)
