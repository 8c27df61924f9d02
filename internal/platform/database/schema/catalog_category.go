package schema

// RefCategoryTable represents the 'catalog.category' table
type RefCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	IsActive    string
	CreatedAt   string
}

// RefCategory is the schema definition for catalog.category
var RefCategory = RefCategoryTable{
	Table:       "catalog.category",
	ID:          "id",
	Name:        "name",
	Description: "description",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
}
