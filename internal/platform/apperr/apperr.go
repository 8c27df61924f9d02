// Copyright (c) 2026 Codeflix. All rights reserved.

/*
Package apperr defines the centralized error taxonomy for the catalog API.

It provides a rich error type that bridges the gap between low-level domain or
storage errors and the problem-shaped HTTP responses the API returns.

Architecture:

  - AppError: a struct carrying a machine-readable Type, a human Title, the
    HTTP status, and a request-specific Detail.
  - Mapping: every error kind the domain can raise has exactly one constructor
    here, so the HTTP boundary never pattern-matches ad hoc.

Every error that leaves the service layer should be an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the catalog API.
//
// Its JSON shape is the problem object returned to clients:
// {type, title, status, detail, details?}.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Type is a machine-readable error identifier (e.g. "NotFound").
	Type string `json:"type"`
	// Title is a short, stable description of the error kind.
	Title string `json:"title"`
	// Status is the HTTP response status code.
	Status int `json:"status"`
	// Detail is the request-specific, client-safe description.
	Detail string `json:"detail"`
	// Details holds per-field validation errors for UnprocessableEntity responses.
	Details []FieldError `json:"details,omitempty"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the exact rule message that was broken.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe detail.
func (e *AppError) Error() string { return e.Detail }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError].
//
// The detail should embed the entity kind and identity, e.g.
//
//	apperr.NotFound("Category '7f3b...' not found.")
func NotFound(detail string) *AppError {
	return &AppError{
		Type:   "NotFound",
		Title:  "Not found",
		Status: http.StatusNotFound,
		Detail: detail,
	}
}

// Validation creates a 422 [AppError] for a broken entity invariant.
//
// Detail carries the first broken rule message; Details enumerates every
// broken rule in evaluation order.
func Validation(detail string, details ...FieldError) *AppError {
	return &AppError{
		Type:    "UnprocessableEntity",
		Title:   "One or more validation errors occurred",
		Status:  http.StatusUnprocessableEntity,
		Detail:  detail,
		Details: details,
	}
}

// RelatedEntity creates a 422 [AppError] raised when referenced foreign ids
// cannot all be resolved to existing rows.
func RelatedEntity(detail string) *AppError {
	return &AppError{
		Type:   "RelatedEntityNotFound",
		Title:  "One or more related entities were not found",
		Status: http.StatusUnprocessableEntity,
		Detail: detail,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(detail string) *AppError {
	return &AppError{
		Type:   "Unauthorized",
		Title:  "Authentication required",
		Status: http.StatusUnauthorized,
		Detail: detail,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(detail string) *AppError {
	return &AppError{
		Type:   "TooManyRequests",
		Title:  "Rate limit exceeded",
		Status: http.StatusTooManyRequests,
		Detail: detail,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Type:   "InternalServerError",
		Title:  "An unexpected error occurred",
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred",
		Cause:  cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
