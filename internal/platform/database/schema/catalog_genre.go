package schema

// RefGenreTable represents the 'catalog.genre' table
type RefGenreTable struct {
	Table     string
	ID        string
	Name      string
	IsActive  string
	CreatedAt string
}

// RefGenre is the schema definition for catalog.genre
var RefGenre = RefGenreTable{
	Table:     "catalog.genre",
	ID:        "id",
	Name:      "name",
	IsActive:  "isactive",
	CreatedAt: "createdat",
}
