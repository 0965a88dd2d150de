// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/database/schema"
)

// Registry is the immutable table of role descriptors.
//
// # Concurrency
//
// A Registry is never mutated after [NewRegistry] returns and is safe for
// concurrent use.
type Registry struct {
	cast    *CastDescriptor
	crew    map[movie.RoleType]*CrewDescriptor
	byLabel map[string]movie.RoleType
}

// RoleInfo is the public listing of one registered role type.
type RoleInfo struct {
	Type   movie.RoleType `json:"type" yaml:"type"`
	Label  string         `json:"label" yaml:"label"`
	Ranked bool           `json:"ranked" yaml:"ranked"`
	Table  string         `json:"-" yaml:"table"`
}

// NewRegistry builds the descriptor for every role type.
func NewRegistry() *Registry {
	crew := []*CrewDescriptor{
		newCrewDescriptor(movie.RoleDirector, "directors", "directors", schema.MovieDirector,
			func(m *movie.Movie) *[]movie.Credit { return &m.Directors }),
		newCrewDescriptor(movie.RoleAssistantDirector, "assistant-directors", "assistant directors", schema.MovieAssistantDirector,
			func(m *movie.Movie) *[]movie.Credit { return &m.AssistantDirectors }),
		newCrewDescriptor(movie.RoleScreenwriter, "screenwriters", "screenwriters", schema.MovieScreenwriter,
			func(m *movie.Movie) *[]movie.Credit { return &m.Screenwriters }),
		newCrewDescriptor(movie.RoleComposer, "composers", "composers", schema.MovieComposer,
			func(m *movie.Movie) *[]movie.Credit { return &m.Composers }),
		newCrewDescriptor(movie.RoleMusician, "musicians", "musicians", schema.MovieMusician,
			func(m *movie.Movie) *[]movie.Credit { return &m.Musicians }),
		newCrewDescriptor(movie.RolePhotographer, "photographers", "photographers", schema.MoviePhotographer,
			func(m *movie.Movie) *[]movie.Credit { return &m.Photographers }),
		newCrewDescriptor(movie.RoleCostumeDesigner, "costume-designers", "costume designers", schema.MovieCostumeDesigner,
			func(m *movie.Movie) *[]movie.Credit { return &m.CostumeDesigners }),
		newCrewDescriptor(movie.RoleSetDesigner, "set-designers", "set designers", schema.MovieSetDesigner,
			func(m *movie.Movie) *[]movie.Credit { return &m.SetDesigners }),
		newCrewDescriptor(movie.RoleEditor, "editors", "editors", schema.MovieEditor,
			func(m *movie.Movie) *[]movie.Credit { return &m.Editors }),
		newCrewDescriptor(movie.RoleCaster, "casters", "casters", schema.MovieCaster,
			func(m *movie.Movie) *[]movie.Credit { return &m.Casters }),
		newCrewDescriptor(movie.RoleArtist, "artists", "artists", schema.MovieArtist,
			func(m *movie.Movie) *[]movie.Credit { return &m.Artists }),
		newCrewDescriptor(movie.RoleSoundEditor, "sound-editors", "sound editors", schema.MovieSoundEditor,
			func(m *movie.Movie) *[]movie.Credit { return &m.SoundEditors }),
		newCrewDescriptor(movie.RoleVFXSupervisor, "vfx-supervisors", "VFX supervisors", schema.MovieVFXSupervisor,
			func(m *movie.Movie) *[]movie.Credit { return &m.VFXSupervisors }),
		newCrewDescriptor(movie.RoleSFXSupervisor, "sfx-supervisors", "SFX supervisors", schema.MovieSFXSupervisor,
			func(m *movie.Movie) *[]movie.Credit { return &m.SFXSupervisors }),
		newCrewDescriptor(movie.RoleMakeupArtist, "makeup-artists", "makeup artists", schema.MovieMakeupArtist,
			func(m *movie.Movie) *[]movie.Credit { return &m.MakeupArtists }),
		newCrewDescriptor(movie.RoleHairDresser, "hair-dressers", "hair dressers", schema.MovieHairDresser,
			func(m *movie.Movie) *[]movie.Credit { return &m.HairDressers }),
		newCrewDescriptor(movie.RoleStuntman, "stuntmen", "stuntmen", schema.MovieStuntman,
			func(m *movie.Movie) *[]movie.Credit { return &m.Stuntmen }),
		newCrewDescriptor(movie.RoleProducer, "producers", "producers", schema.MovieProducer,
			func(m *movie.Movie) *[]movie.Credit { return &m.Producers }),
	}

	registry := &Registry{
		cast:    newCastDescriptor(),
		crew:    make(map[movie.RoleType]*CrewDescriptor, len(crew)),
		byLabel: make(map[string]movie.RoleType, len(crew)+1),
	}
	registry.byLabel[registry.cast.Label] = registry.cast.Type

	for _, descriptor := range crew {
		registry.crew[descriptor.Type] = descriptor
		registry.byLabel[descriptor.Label] = descriptor.Type
	}

	return registry
}

// DescriptorFor returns the crew descriptor for roleType. The actor role
// has its own ranked path; see [Registry.Cast].
func (registry *Registry) DescriptorFor(roleType movie.RoleType) (*CrewDescriptor, error) {
	descriptor, ok := registry.crew[roleType]
	if !ok {
		return nil, apperr.NotFound("Role type " + string(roleType))
	}
	return descriptor, nil
}

// Cast returns the actor descriptor.
func (registry *Registry) Cast() *CastDescriptor {
	return registry.cast
}

// RoleTypes lists every registered role type, actor first, then crew in display order.
func (registry *Registry) RoleTypes() []movie.RoleType {
	return append([]movie.RoleType{movie.RoleActor}, movie.CrewRoleTypes()...)
}

// ByLabel maps a plural URL segment back to its role type.
func (registry *Registry) ByLabel(label string) (movie.RoleType, bool) {
	roleType, ok := registry.byLabel[label]
	return roleType, ok
}

// Roles describes every registered role type in [Registry.RoleTypes] order.
func (registry *Registry) Roles() []RoleInfo {
	roles := []RoleInfo{{
		Type:   registry.cast.Type,
		Label:  registry.cast.Label,
		Ranked: registry.cast.Ranked(),
		Table:  registry.cast.Table.Table,
	}}

	for _, roleType := range movie.CrewRoleTypes() {
		descriptor := registry.crew[roleType]
		roles = append(roles, RoleInfo{
			Type:   descriptor.Type,
			Label:  descriptor.Label,
			Ranked: descriptor.Ranked(),
			Table:  descriptor.Table.Table,
		})
	}

	return roles
}
