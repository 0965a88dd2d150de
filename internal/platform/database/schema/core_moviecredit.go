package schema

// MovieCreditTable represents one 'core.movie_<role>' association table.
// Every role type owns a structurally identical table; only the actor
// table carries Rank.
type MovieCreditTable struct {
	Table     string
	ID        string
	MovieID   string
	PersonID  string
	Role      string
	Rank      string
	CreatedAt string
}

func movieCredit(roleType string) MovieCreditTable {
	return MovieCreditTable{
		Table:     "core.movie_" + roleType,
		ID:        "id",
		MovieID:   "movie_id",
		PersonID:  "person_id",
		Role:      "role",
		CreatedAt: "created_at",
	}
}

// Ranked reports whether the table carries a billing order column.
func (t MovieCreditTable) Ranked() bool {
	return t.Rank != ""
}

// MovieActor is the schema definition for core.movie_actor
var MovieActor = func() MovieCreditTable {
	table := movieCredit("actor")
	table.Rank = "rank"
	return table
}()

// Crew association tables, one per technician role type.
var (
	MovieDirector          = movieCredit("director")
	MovieAssistantDirector = movieCredit("assistant_director")
	MovieScreenwriter      = movieCredit("screenwriter")
	MovieComposer          = movieCredit("composer")
	MovieMusician          = movieCredit("musician")
	MoviePhotographer      = movieCredit("photographer")
	MovieCostumeDesigner   = movieCredit("costume_designer")
	MovieSetDesigner       = movieCredit("set_designer")
	MovieEditor            = movieCredit("editor")
	MovieCaster            = movieCredit("caster")
	MovieArtist            = movieCredit("artist")
	MovieSoundEditor       = movieCredit("sound_editor")
	MovieVFXSupervisor     = movieCredit("vfx_supervisor")
	MovieSFXSupervisor     = movieCredit("sfx_supervisor")
	MovieMakeupArtist      = movieCredit("makeup_artist")
	MovieHairDresser       = movieCredit("hair_dresser")
	MovieStuntman          = movieCredit("stuntman")
	MovieProducer          = movieCredit("producer")
)
