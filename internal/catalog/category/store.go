package category

import (
	"context"
	"fmt"

	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/pkg/pagination"
)

// Repository is the persistence contract for categories.
//
// Get, Update, and Delete report a missing row as a not-found error that
// embeds the looked-up id. ListIDsByIDs returns the subset of the given ids
// that actually exist; it backs referential checks and never loads entities.
type Repository interface {
	Insert(ctx context.Context, category *Category) error
	Get(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Category], error)
	ListIDsByIDs(ctx context.Context, ids []string) ([]string, error)
}

// notFound builds the canonical not-found error for a category id.
func notFound(id string) error {
	return apperr.NotFound(fmt.Sprintf("Category '%s' not found.", id))
}
