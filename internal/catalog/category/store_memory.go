package category

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codeflix/catalog/pkg/pagination"
)

// MemoryRepository is a mutex-guarded in-memory Repository.
//
// It backs the memory store driver and the handler and service tests. Search
// mirrors the Postgres semantics: case-insensitive substring match on name,
// allow-listed sort fields with a fallback to name, and an ascending id
// tie-break for stable pagination.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Category)}
}

func (repository *MemoryRepository) Insert(ctx context.Context, category *Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	clone := *category
	repository.items[category.ID] = &clone
	return nil
}

func (repository *MemoryRepository) Get(ctx context.Context, id string) (*Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[id]
	if !ok {
		return nil, notFound(id)
	}
	clone := *stored
	return &clone, nil
}

func (repository *MemoryRepository) Update(ctx context.Context, category *Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[category.ID]; !ok {
		return notFound(category.ID)
	}
	clone := *category
	repository.items[category.ID] = &clone
	return nil
}

func (repository *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return notFound(id)
	}
	delete(repository.items, id)
	return nil
}

func (repository *MemoryRepository) Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Category], error) {
	out := pagination.SearchOutput[*Category]{
		CurrentPage: input.Page,
		PerPage:     input.PerPage,
		Items:       []*Category{},
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	repository.mu.RLock()
	matched := make([]*Category, 0, len(repository.items))
	term := strings.ToLower(input.Term)
	for _, stored := range repository.items {
		if term != "" && !strings.Contains(strings.ToLower(stored.Name), term) {
			continue
		}
		clone := *stored
		matched = append(matched, &clone)
	}
	repository.mu.RUnlock()

	sortCategories(matched, input.Sort, input.Dir)
	out.Total = len(matched)

	start := input.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + input.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	out.Items = append(out.Items, matched[start:end]...)

	return out, nil
}

func (repository *MemoryRepository) ListIDsByIDs(ctx context.Context, ids []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	var found []string
	for _, id := range ids {
		if _, ok := repository.items[id]; ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func sortCategories(items []*Category, requested string, dir pagination.Direction) {
	key := pagination.SortKey(requested, memorySortFields, "name")
	desc := dir == pagination.Desc

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if desc {
			a, b = b, a
		}

		switch key {
		case "id":
			return a.ID < b.ID
		case "createdat":
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		default:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				return an < bn
			}
		}
		// Tie-break on id, always ascending.
		return items[i].ID < items[j].ID
	})
}

var memorySortFields = map[string]string{
	"name":      "name",
	"id":        "id",
	"createdat": "createdat",
}
