// Copyright (c) 2026 Codeflix. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/codeflix/catalog/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist
// and the caller has no better identity to report.
var ErrNotFound = apperr.NotFound("Resource not found.")

// IsNoRows reports whether err is the driver's empty-result sentinel.
//
// Stores use this to substitute an entity-specific not-found error that embeds
// the looked-up identity.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// Unknown query errors become internal server errors. The action tag keeps
	// the failing query identifiable in logs without exposing SQL to clients.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
