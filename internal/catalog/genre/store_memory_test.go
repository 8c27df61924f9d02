package genre_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeflix/catalog/internal/catalog/genre"
	"github.com/codeflix/catalog/pkg/pagination"
)

func seedGenres(t *testing.T, repo *genre.MemoryRepository, names ...string) []*genre.Genre {
	t.Helper()

	seeded := make([]*genre.Genre, 0, len(names))
	for i, name := range names {
		g, err := genre.New(name, true)
		require.NoError(t, err)
		// Deterministic, strictly increasing creation times.
		g.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(context.Background(), g))
		seeded = append(seeded, g)
	}
	return seeded
}

func genreNames(items []*genre.Genre) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestGenreMemorySearch_TermFilter(t *testing.T) {
	repo := genre.NewMemoryRepository()
	seedGenres(t, repo, "Horror", "Horror Comedy", "Drama", "Romance")

	out, err := repo.Search(context.Background(), pagination.SearchInput{Page: 1, PerPage: 15, Term: "hor"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.ElementsMatch(t, []string{"Horror", "Horror Comedy"}, genreNames(out.Items))

	// Total counts all matches, not just the returned page.
	page2, err := repo.Search(context.Background(), pagination.SearchInput{Page: 2, PerPage: 1, Term: "hor"})
	require.NoError(t, err)
	assert.Equal(t, 2, page2.Total)
	assert.Len(t, page2.Items, 1)
}

func TestGenreMemorySearch_Ordering(t *testing.T) {
	repo := genre.NewMemoryRepository()
	seedGenres(t, repo, "Drama", "Action", "Comedy")

	tests := []struct {
		name  string
		sort  string
		dir   pagination.Direction
		order []string
	}{
		{"name_asc", "name", pagination.Asc, []string{"Action", "Comedy", "Drama"}},
		{"name_desc", "name", pagination.Desc, []string{"Drama", "Comedy", "Action"}},
		{"wire_field_name", "created_at", pagination.Asc, []string{"Drama", "Action", "Comedy"}},
		{"wire_field_name_desc", "created_at", pagination.Desc, []string{"Comedy", "Action", "Drama"}},
		{"unknown_falls_back_to_name", "price", pagination.Asc, []string{"Action", "Comedy", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := repo.Search(context.Background(), pagination.SearchInput{
				Page: 1, PerPage: 15, Sort: tt.sort, Dir: tt.dir,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.order, genreNames(out.Items))
		})
	}
}

func TestGenreMemorySearch_TieBreakOnID(t *testing.T) {
	repo := genre.NewMemoryRepository()
	seeded := seedGenres(t, repo, "Same", "Same", "Same")

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
