// Copyright (c) 2026 Codeflix. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeflix/catalog/pkg/pagination"
)

func TestFromRequest_Defaults(t *testing.T) {
	request := httptest.NewRequest("GET", "/categories", nil)

	input := pagination.FromRequest(request)

	assert.Equal(t, pagination.DefaultPage, input.Page)
	assert.Equal(t, pagination.DefaultPerPage, input.PerPage)
	assert.Equal(t, "", input.Term)
	assert.Equal(t, "", input.Sort)
	assert.Equal(t, pagination.Asc, input.Dir)
}

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
		wantDir     pagination.Direction
	}{
		{"negative_page", "page=-2", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Asc},
		{"zero_page", "page=0", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Asc},
		{"non_numeric", "page=abc&per_page=xyz", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Asc},
		{"per_page_over_max", "per_page=1000", pagination.DefaultPage, pagination.MaxPerPage, pagination.Asc},
		{"per_page_at_max", "per_page=100", pagination.DefaultPage, pagination.MaxPerPage, pagination.Asc},
		{"per_page_zero", "per_page=0", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Asc},
		{"desc_case_insensitive", "dir=DESC", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Desc},
		{"unknown_dir_is_asc", "dir=sideways", pagination.DefaultPage, pagination.DefaultPerPage, pagination.Asc},
		{"valid_combo", "page=3&per_page=25", 3, 25, pagination.Asc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/categories?"+tt.query, nil)
			input := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, input.Page)
			assert.Equal(t, tt.wantPerPage, input.PerPage)
			assert.Equal(t, tt.wantDir, input.Dir)
		})
	}
}

func TestSearchInput_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.SearchInput{Page: 1, PerPage: 15}.Offset())
	assert.Equal(t, 15, pagination.SearchInput{Page: 2, PerPage: 15}.Offset())
	assert.Equal(t, 40, pagination.SearchInput{Page: 5, PerPage: 10}.Offset())
	assert.Equal(t, 0, pagination.SearchInput{Page: 0, PerPage: 15}.Offset())
}

func TestSortKey(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"id":        "id",
		"createdat": "createdat",
	}

	assert.Equal(t, "name", pagination.SortKey("name", allowed, "name"))
	assert.Equal(t, "createdat", pagination.SortKey("CreatedAt", allowed, "name"))
	assert.Equal(t, "id", pagination.SortKey("ID", allowed, "name"))
	// The wire field name matches too.
	assert.Equal(t, "createdat", pagination.SortKey("created_at", allowed, "name"))
	assert.Equal(t, "createdat", pagination.SortKey("Created_At", allowed, "name"))
	// Unknown and empty fields fall back.
	assert.Equal(t, "name", pagination.SortKey("price", allowed, "name"))
	assert.Equal(t, "name", pagination.SortKey("", allowed, "name"))
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"name": "name", "id": "id"}

	assert.Equal(t, "name ASC, id ASC", pagination.OrderClause("name", pagination.Asc, allowed, "name", "id"))
	assert.Equal(t, "name DESC, id ASC", pagination.OrderClause("name", pagination.Desc, allowed, "name", "id"))
	// The tie-break stays ascending even for a descending primary sort.
	assert.Equal(t, "name DESC, id ASC", pagination.OrderClause("unknown", pagination.Desc, allowed, "name", "id"))
}
