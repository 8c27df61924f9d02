package genre

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codeflix/catalog/pkg/pagination"
)

// MemoryRepository is a mutex-guarded in-memory Repository with the same
// search semantics as the Postgres store.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Genre
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Genre)}
}

func cloneGenre(g *Genre) *Genre {
	clone := *g
	clone.Categories = append([]string{}, g.Categories...)
	return &clone
}

func (repository *MemoryRepository) Insert(ctx context.Context, genre *Genre) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.items[genre.ID] = cloneGenre(genre)
	return nil
}

func (repository *MemoryRepository) Get(ctx context.Context, id string) (*Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.items[id]
	if !ok {
		return nil, notFound(id)
	}
	return cloneGenre(stored), nil
}

func (repository *MemoryRepository) Update(ctx context.Context, genre *Genre) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[genre.ID]; !ok {
		return notFound(genre.ID)
	}
	repository.items[genre.ID] = cloneGenre(genre)
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

func (repository *MemoryRepository) Search(ctx context.Context, input pagination.SearchInput) (pagination.SearchOutput[*Genre], error) {
	out := pagination.SearchOutput[*Genre]{
		CurrentPage: input.Page,
		PerPage:     input.PerPage,
		Items:       []*Genre{},
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	repository.mu.RLock()
	matched := make([]*Genre, 0, len(repository.items))
	term := strings.ToLower(input.Term)
	for _, stored := range repository.items {
		if term != "" && !strings.Contains(strings.ToLower(stored.Name), term) {
			continue
		}
		matched = append(matched, cloneGenre(stored))
	}
	repository.mu.RUnlock()

	sortGenres(matched, input.Sort, input.Dir)
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

func sortGenres(items []*Genre, requested string, dir pagination.Direction) {
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
