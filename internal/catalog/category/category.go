package category

import (
	"time"

	"github.com/codeflix/catalog/internal/platform/validate"
	"github.com/codeflix/catalog/pkg/uuidv7"
)

// Rule bounds for the Category aggregate.
const (
	MinNameLength        = 3
	MaxNameLength        = 255
	MaxDescriptionLength = 10_000
)

// Field labels used in validation rule messages.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
)

// Category is a self-validating catalog aggregate.
//
// Instances are only obtainable through [New], so a Category in circulation
// always satisfies its invariants; every mutating method revalidates before
// returning.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// New constructs a validated Category with a fresh time-ordered id.
//
// The description pointer distinguishes an explicit empty description (valid)
// from an absent one (a broken rule).
func New(name string, description *string, isActive bool) (*Category, error) {
	v := &validate.Validator{}
	v.NotEmpty(FieldName, name).
		MinLen(FieldName, name, MinNameLength).
		MaxLen(FieldName, name, MaxNameLength)
	v.NotNil(FieldDescription, description)
	if description != nil {
		v.MaxLen(FieldDescription, *description, MaxDescriptionLength)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Category{
		ID:          uuidv7.New(),
		Name:        name,
		Description: *description,
		IsActive:    isActive,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Update replaces the name unconditionally and the description only when a
// non-nil value is supplied, then revalidates.
func (c *Category) Update(name string, description *string) error {
	c.Name = name
	if description != nil {
		c.Description = *description
	}
	return c.validate()
}

// Activate enables the category.
func (c *Category) Activate() error {
	c.IsActive = true
	return c.validate()
}

// Deactivate disables the category.
func (c *Category) Deactivate() error {
	c.IsActive = false
	return c.validate()
}

// validate re-checks the aggregate's invariants against its current state.
func (c *Category) validate() error {
	v := &validate.Validator{}
	v.NotEmpty(FieldName, c.Name).
		MinLen(FieldName, c.Name, MinNameLength).
		MaxLen(FieldName, c.Name, MaxNameLength)
	v.MaxLen(FieldDescription, c.Description, MaxDescriptionLength)
	return v.Err()
}
