package schema

// CorePersonTable represents the 'core.person' table
type CorePersonTable struct {
	Table       string
	ID          string
	Name        string
	SearchName  string
	DateOfBirth string
	DateOfDeath string
	PhotoURL    string
	CreatedAt   string
	UpdatedAt   string
}

// CorePerson is the schema definition for core.person
var CorePerson = CorePersonTable{
	Table:       "core.person",
	ID:          "id",
	Name:        "name",
	SearchName:  "search_name",
	DateOfBirth: "date_of_birth",
	DateOfDeath: "date_of_death",
	PhotoURL:    "photo_url",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns lists the projected columns in scan order. SearchName is write-only.
func (t CorePersonTable) Columns() []string {
	return []string{t.ID, t.Name, t.DateOfBirth, t.DateOfDeath, t.PhotoURL, t.CreatedAt, t.UpdatedAt}
}
