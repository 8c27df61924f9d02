package genre

import (
	"time"

	"github.com/codeflix/catalog/internal/platform/validate"
	"github.com/codeflix/catalog/pkg/uuidv7"
)

const FieldName = "Name"

// Genre is a catalog aggregate that may be linked to any number of categories.
//
// Category links behave as a set: adding an id twice is a no-op and removal is
// by value. Link ids are kept in insertion order.
type Genre struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	Categories []string  `json:"categories"`
	CreatedAt  time.Time `json:"created_at"`
}

// New constructs a validated Genre with a fresh time-ordered id and no
// category links.
func New(name string, isActive bool) (*Genre, error) {
	v := &validate.Validator{}
	v.NotEmpty(FieldName, name)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Genre{
		ID:         uuidv7.New(),
		Name:       name,
		IsActive:   isActive,
		Categories: []string{},
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Update replaces the name and revalidates.
func (g *Genre) Update(name string) error {
	g.Name = name
	return g.validate()
}

// Activate enables the genre.
func (g *Genre) Activate() error {
	g.IsActive = true
	return g.validate()
}

// Deactivate disables the genre.
func (g *Genre) Deactivate() error {
	g.IsActive = false
	return g.validate()
}

// AddCategory links a category id. Duplicates are ignored.
func (g *Genre) AddCategory(categoryID string) {
	for _, existing := range g.Categories {
		if existing == categoryID {
			return
		}
	}
	g.Categories = append(g.Categories, categoryID)
}

// RemoveCategory unlinks a category id if present.
func (g *Genre) RemoveCategory(categoryID string) {
	for index, existing := range g.Categories {
		if existing == categoryID {
			g.Categories = append(g.Categories[:index], g.Categories[index+1:]...)
			return
		}
	}
}

// RemoveAllCategories clears every category link.
func (g *Genre) RemoveAllCategories() {
	g.Categories = []string{}
}

func (g *Genre) validate() error {
	v := &validate.Validator{}
	v.NotEmpty(FieldName, g.Name)
	return v.Err()
}
