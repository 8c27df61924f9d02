// Copyright (c) 2026 Codeflix. All rights reserved.

// Package pagination provides the shared search contract for API list endpoints.
//
// # Overview
//
// Every catalog listing accepts the same five query parameters (page, per_page,
// search, sort, dir) and returns the same metadata block. This package owns the
// parsing, clamping, and ordering rules so that individual entities never
// reimplement them.
package pagination

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/codeflix/catalog/pkg/convert"
)

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 15
	// MaxPerPage is the upper bound for items per page to prevent system abuse.
	MaxPerPage = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Direction is the requested sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SearchInput holds the parsed search contract from a request's query string.
type SearchInput struct {
	Page    int
	PerPage int
	// Term is the substring filter applied to the entity name. Blank means no filter.
	Term string
	// Sort is the requested sort field, canonicalized by the store via [SortKey].
	Sort string
	Dir  Direction
}

// Offset returns the SQL OFFSET value derived from Page and PerPage.
func (input SearchInput) Offset() int {
	if input.Page <= 1 {
		return 0
	}
	return (input.Page - 1) * input.PerPage
}

// SearchOutput is the paginated result of a repository search.
//
// Total always reflects the filtered, pre-pagination count so that clients can
// compute page counts; len(Items) never exceeds PerPage.
type SearchOutput[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int
	Items       []T
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(currentPage, perPage, total int) Meta {
	return Meta{
		CurrentPage: currentPage,
		PerPage:     perPage,
		Total:       total,
	}
}

// FromRequest parses the search contract from an HTTP request.
//
// # Clamping
//
// Invalid or negative values fall back to [DefaultPage] and [DefaultPerPage];
// per_page is capped at [MaxPerPage]. Any dir other than "desc" means
// ascending.
func FromRequest(request *http.Request) SearchInput {
	params := request.URL.Query()

	page := convert.ToIntD(params.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perPage := convert.ToIntD(params.Get("per_page"), DefaultPerPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	dir := Asc
	if strings.EqualFold(params.Get("dir"), string(Desc)) {
		dir = Desc
	}

	return SearchInput{
		Page:    page,
		PerPage: perPage,
		Term:    strings.TrimSpace(params.Get("search")),
		Sort:    params.Get("sort"),
		Dir:     dir,
	}
}

// SortKey canonicalizes a requested sort field against an allow-list.
//
// The match is case-insensitive and ignores underscores, so the wire form
// "created_at" and the column form "createdat" resolve to the same key.
// Unrecognized or empty fields fall back to the provided default, so a bad
// sort parameter can never fail a listing.
func SortKey(requested string, allowed map[string]string, fallback string) string {
	normalized := strings.ReplaceAll(strings.ToLower(requested), "_", "")
	if key, ok := allowed[normalized]; ok {
		return key
	}
	return fallback
}

// OrderClause builds the body of a SQL ORDER BY from an allow-listed sort field.
//
// A secondary ascending sort on tieBreak is always appended so that pagination
// is stable across pages regardless of the primary field. Only allow-listed
// column names are ever interpolated.
func OrderClause(requested string, dir Direction, allowed map[string]string, fallback, tieBreak string) string {
	column := SortKey(requested, allowed, fallback)

	direction := "ASC"
	if dir == Desc {
		direction = "DESC"
	}

	return fmt.Sprintf("%s %s, %s ASC", column, direction, tieBreak)
}
