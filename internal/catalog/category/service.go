package category

import (
	"context"
	"log/slog"

	"github.com/codeflix/catalog/pkg/pagination"
	"github.com/codeflix/catalog/pkg/pointer"
)

// CreateInput carries the fields for creating a category.
//
// A nil Description defaults to the empty string; a nil IsActive defaults to
// active.
type CreateInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

// UpdateInput carries the fields for updating a category.
//
// A nil Description leaves the stored description untouched. A nil IsActive
// leaves the active flag untouched; a non-nil value toggles it only when it
// differs from the current state.
type UpdateInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) Create(ctx context.Context, input CreateInput) (*Category, error) {
	description := input.Description
	if description == nil {
		description = pointer.To("")
	}

	category, err := New(input.Name, description, pointer.Fallback(input.IsActive, true))
	if err != nil {
		return nil, err
	}

	if err := service.repo.Insert(ctx, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("name", category.Name),
	)
	return category, nil
}

func (service *Service) Get(ctx context.Context, id string) (*Category, error) {
	return service.repo.Get(ctx, id)
}

func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Category, error) {
	category, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(input.Name, input.Description); err != nil {
		return nil, err
	}

	if input.IsActive != nil && *input.IsActive != category.IsActive {
		if *input.IsActive {
			err = category.Activate()
		} else {
			err = category.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := service.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID))
	return category, nil
}

func (service *Service) Delete(ctx context.Context, id string) error {
	if _, err := service.repo.Get(ctx, id); err != nil {
		return err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}

func (service *Service) List(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Category], error) {
	return service.repo.Search(ctx, input)
}
