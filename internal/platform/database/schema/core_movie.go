package schema

// CoreMovieTable represents the 'core.movie' table
type CoreMovieTable struct {
	Table         string
	ID            string
	Title         string
	OriginalTitle string
	ReleaseDate   string
	CreatedAt     string
	UpdatedAt     string
}

// CoreMovie is the schema definition for core.movie
var CoreMovie = CoreMovieTable{
	Table:         "core.movie",
	ID:            "id",
	Title:         "title",
	OriginalTitle: "original_title",
	ReleaseDate:   "release_date",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t CoreMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.OriginalTitle, t.ReleaseDate, t.CreatedAt, t.UpdatedAt}
}
