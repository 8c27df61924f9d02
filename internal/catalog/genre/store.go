package genre

import (
	"context"
	"fmt"

	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/pkg/pagination"
)

// Repository is the persistence contract for genres.
//
// Implementations persist the genre row and its category links atomically:
// Insert and Update replace the link set to exactly match Categories on the
// entity. Get and Search hydrate Categories on every returned genre.
type Repository interface {
	Insert(ctx context.Context, genre *Genre) error
	Get(ctx context.Context, id string) (*Genre, error)
	Update(ctx context.Context, genre *Genre) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Genre], error)
}

// notFound builds the canonical not-found error for a genre id.
func notFound(id string) error {
	return apperr.NotFound(fmt.Sprintf("Genre '%s' not found.", id))
}
