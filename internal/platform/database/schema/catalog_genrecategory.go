package schema

// GenreCategoryTable represents the 'catalog.genrecategory' link table
type GenreCategoryTable struct {
	Table      string
	GenreID    string
	CategoryID string
}

// GenreCategory is the schema definition for catalog.genrecategory
var GenreCategory = GenreCategoryTable{
	Table:      "catalog.genrecategory",
	GenreID:    "genreid",
	CategoryID: "categoryid",
}
