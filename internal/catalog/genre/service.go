package genre

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/pkg/pagination"
	"github.com/codeflix/catalog/pkg/pointer"
)

// CategoryResolver reports which of the given category ids exist. The category
// repository satisfies it; genres never load category entities.
type CategoryResolver interface {
	ListIDsByIDs(ctx context.Context, ids []string) ([]string, error)
}

// CreateInput carries the fields for creating a genre.
//
// A nil IsActive defaults to active. Categories may be empty; every supplied
// id must reference an existing category.
type CreateInput struct {
	Name       string
	IsActive   *bool
	Categories []string
}

// UpdateInput carries the fields for updating a genre.
//
// A nil Categories slice leaves the stored links untouched; a non-nil slice,
// including an empty one, replaces the link set entirely. A nil IsActive
// leaves the active flag untouched.
type UpdateInput struct {
	Name       string
	IsActive   *bool
	Categories *[]string
}

type Service struct {
	repo       Repository
	categories CategoryResolver
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

func (service *Service) Create(ctx context.Context, input CreateInput) (*Genre, error) {
	g, err := New(input.Name, pointer.Fallback(input.IsActive, true))
	if err != nil {
		return nil, err
	}

	if err := service.checkRelatedCategories(ctx, input.Categories); err != nil {
		return nil, err
	}
	for _, categoryID := range input.Categories {
		g.AddCategory(categoryID)
	}

	if err := service.repo.Insert(ctx, g); err != nil {
		return nil, err
	}

	service.logger.Info("genre_created",
		slog.String("genre_id", g.ID),
		slog.String("name", g.Name),
		slog.Int("categories", len(g.Categories)),
	)
	return g, nil
}

func (service *Service) Get(ctx context.Context, id string) (*Genre, error) {
	return service.repo.Get(ctx, id)
}

func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Genre, error) {
	g, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := g.Update(input.Name); err != nil {
		return nil, err
	}

	if input.IsActive != nil && *input.IsActive != g.IsActive {
		if *input.IsActive {
			err = g.Activate()
		} else {
			err = g.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if input.Categories != nil {
		if err := service.checkRelatedCategories(ctx, *input.Categories); err != nil {
			return nil, err
		}
		g.RemoveAllCategories()
		for _, categoryID := range *input.Categories {
			g.AddCategory(categoryID)
		}
	}

	if err := service.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	service.logger.Info("genre_updated", slog.String("genre_id", g.ID))
	return g, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if _, err := service.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.String("genre_id", id))
	return nil
}

func (service *Service) List(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Genre], error) {
	return service.repo.Search(ctx, input)
}

// checkRelatedCategories verifies that every supplied category id exists.
// Missing ids are reported once each, in the order they were supplied.
func (service *Service) checkRelatedCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := service.categories.ListIDsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}

	var missing []string
	reported := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !existing[id] && !reported[id] {
			missing = append(missing, id)
			reported[id] = true
		}
	}
	if len(missing) > 0 {
		return apperr.RelatedEntity(fmt.Sprintf("Related category ids not found %s", strings.Join(missing, ", ")))
	}
	return nil
}
