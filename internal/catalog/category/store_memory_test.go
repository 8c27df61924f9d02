package category_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeflix/catalog/internal/catalog/category"
	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/pkg/pagination"
	"github.com/codeflix/catalog/pkg/pointer"
)

func seedCategories(t *testing.T, repo *category.MemoryRepository, names ...string) []*category.Category {
	t.Helper()

	seeded := make([]*category.Category, 0, len(names))
	for i, name := range names {
		cat, err := category.New(name, pointer.To(""), true)
		require.NoError(t, err)
		// Deterministic, strictly increasing creation times.
		cat.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(context.Background(), cat))
		seeded = append(seeded, cat)
	}
	return seeded
}

func names(items []*category.Category) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestMemorySearch_DefaultPageSize(t *testing.T) {
	repo := category.NewMemoryRepository()

	var all []string
	for i := 1; i <= 20; i++ {
		all = append(all, fmt.Sprintf("Category %02d", i))
	}
	seedCategories(t, repo, all...)

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15})
	require.NoError(t, err)

	assert.Equal(t, 20, out.Total)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 15, out.PerPage)
	assert.Len(t, out.Items, 15)
}

func TestMemorySearch_LastPartialPage(t *testing.T) {
	repo := category.NewMemoryRepository()
	seedCategories(t, repo, "Cat 1", "Cat 2", "Cat 3", "Cat 4", "Cat 5", "Cat 6", "Cat 7")

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 2, PerPage: 5})
	require.NoError(t, err)

	assert.Equal(t, 7, out.Total)
	assert.Len(t, out.Items, 2)
}

func TestMemorySearch_PageBeyondEnd(t *testing.T) {
	repo := category.NewMemoryRepository()
	seedCategories(t, repo, "Cat 1", "Cat 2", "Cat 3")

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 5, PerPage: 15})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
}

func TestMemorySearch_TermFilter(t *testing.T) {
	repo := category.NewMemoryRepository()
	seedCategories(t, repo,
		"Action",
		"Horror",
		"Horror - Robots",
		"Horror - Based on Real Facts",
		"Drama",
		"Sci-Fi IA",
		"Sci-Fi Space",
		"Sci-Fi Robots",
		"Sci-Fi Future",
	)

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15, Term: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)
	assert.ElementsMatch(t,
		[]string{"Sci-Fi IA", "Sci-Fi Space", "Sci-Fi Robots", "Sci-Fi Future"},
		names(out.Items),
	)

	// Match is case-insensitive.
	out, err = repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15, Term: "sci-fi"})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)

	// Total counts all matches, not just the returned page.
	page2, err := repo.Search(context.Background(), pagination.SearchInput{Page: 2, PerPage: 2, Term: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, 4, page2.Total)
	assert.Len(t, page2.Items, 2)

	page3, err := repo.Search(context.Background(), pagination.SearchInput{Page: 3, PerPage: 2, Term: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, 4, page3.Total)
	assert.Empty(t, page3.Items)
}

func TestMemorySearch_NoMatches(t *testing.T) {
	repo := category.NewMemoryRepository()
	seedCategories(t, repo, "Action", "Drama")

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15, Term: "zzz"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Items)
}

func TestMemorySearch_Ordering(t *testing.T) {
	repo := category.NewMemoryRepository()
	seeded := seedCategories(t, repo, "Drama", "Action", "Comedy")

	tests := []struct {
		name  string
		sort  string
		dir   pagination.Direction
		order []string
	}{
		{"name_asc", "name", pagination.Asc, []string{"Action", "Comedy", "Drama"}},
		{"name_desc", "name", pagination.Desc, []string{"Drama", "Comedy", "Action"}},
		{"createdat_asc", "createdat", pagination.Asc, []string{"Drama", "Action", "Comedy"}},
		{"createdat_desc", "createdat", pagination.Desc, []string{"Comedy", "Action", "Drama"}},
		{"case_insensitive_field", "CreatedAt", pagination.Asc, []string{"Drama", "Action", "Comedy"}},
		{"wire_field_name", "created_at", pagination.Asc, []string{"Drama", "Action", "Comedy"}},
		{"wire_field_name_desc", "created_at", pagination.Desc, []string{"Comedy", "Action", "Drama"}},
		{"unknown_falls_back_to_name", "price", pagination.Asc, []string{"Action", "Comedy", "Drama"}},
		{"empty_falls_back_to_name", "", pagination.Asc, []string{"Action", "Comedy", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := repo.Search(context.Background(), pagination.SearchInput{
				Page: 1, PerPage: 15, Sort: tt.sort, Dir: tt.dir,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.order, names(out.Items))
		})
	}

	// Sorting by id follows insertion order here because UUIDv7 ids are
	// time-ordered.
	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15, Sort: "id"})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, seeded[0].ID, out.Items[0].ID)
	assert.Equal(t, seeded[2].ID, out.Items[2].ID)
}

func TestMemorySearch_TieBreakOnID(t *testing.T) {
	repo := category.NewMemoryRepository()
	seeded := seedCategories(t, repo, "Same", "Same", "Same")

	for _, dir := range []pagination.Direction{pagination.Asc, pagination.Desc} {
		out, err := repo.Search(context.Background(), pagination.SearchInput{
			Page: 1, PerPage: 15, Sort: "name", Dir: dir,
		})
		require.NoError(t, err)
		require.Len(t, out.Items, 3)

		// Equal names always resolve to ascending id order.
		assert.Equal(t, seeded[0].ID, out.Items[0].ID)
		assert.Equal(t, seeded[1].ID, out.Items[1].ID)
		assert.Equal(t, seeded[2].ID, out.Items[2].ID)
	}
}

func TestMemoryStore_CRUD(t *testing.T) {
	repo := category.NewMemoryRepository()
	seeded := seedCategories(t, repo, "Movies")
	id := seeded[0].ID

	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Movies", stored.Name)

	// Mutating the returned entity does not leak into the store.
	stored.Name = "Changed"
	again, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Movies", again.Name)

	again.Name = "Series"
	require.NoError(t, repo.Update(context.Background(), again))
	updated, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Series", updated.Name)

	require.NoError(t, repo.Delete(context.Background(), id))
	_, err = repo.Get(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).Status)
}

func TestMemoryStore_NotFoundMessages(t *testing.T) {
	repo := category.NewMemoryRepository()
	missing := "0191e2f0-0000-7000-8000-000000000000"

	_, err := repo.Get(context.Background(), missing)
	require.Error(t, err)
	assert.Equal(t, "Category '"+missing+"' not found.", apperr.As(err).Detail)

	err = repo.Delete(context.Background(), missing)
	require.Error(t, err)
	assert.Equal(t, "Category '"+missing+"' not found.", apperr.As(err).Detail)
}

func TestMemoryStore_ListIDsByIDs(t *testing.T) {
	repo := category.NewMemoryRepository()
	seeded := seedCategories(t, repo, "Alpha", "Beta", "Gamma")
	missing := "0191e2f0-0000-7000-8000-000000000000"

	found, err := repo.ListIDsByIDs(context.Background(), []string{seeded[0].ID, missing, seeded[2].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{seeded[0].ID, seeded[2].ID}, found)

	found, err = repo.ListIDsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
