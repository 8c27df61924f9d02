// Copyright (c) 2026 Codeflix. All rights reserved.

// Package validate provides a chainable Validator that collects the domain's
// field-level rule violations before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively by the domain entities, never in handlers
// or storage. Rules for one field evaluate in declaration order and stop at the
// first failure for that field, so an empty name reports "should not be empty
// or null" rather than every length rule at once.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/codeflix/catalog/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.Validation("Invalid JSON payload")

// Validator collects field-level rule violations via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	errs   []apperr.FieldError
	failed map[string]bool
}

// NotEmpty fails if the value is empty or whitespace only.
func (v *Validator) NotEmpty(field, value string) *Validator {
	if v.failed[field] {
		return v
	}
	if strings.TrimSpace(value) == "" {
		v.add(field, fmt.Sprintf("%s should not be empty or null", field))
	}
	return v
}

// NotNil fails if the pointer is nil. A non-nil empty string passes.
func (v *Validator) NotNil(field string, value *string) *Validator {
	if v.failed[field] {
		return v
	}
	if value == nil {
		v.add(field, fmt.Sprintf("%s should not be null", field))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if v.failed[field] {
		return v
	}
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("%s should be at least %d characters long", field, min))
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if v.failed[field] {
		return v
	}
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("%s should be less or equal %d characters long", field, max))
	}
	return v
}

// Err returns a 422 [apperr.AppError] whose detail is the first broken rule,
// or nil if all rules passed.
//
// This is the only output method, called at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.Validation(v.errs[0].Message, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] and marks the field as failed.
func (v *Validator) add(field, message string) {
	if v.failed == nil {
		v.failed = make(map[string]bool)
	}
	v.failed[field] = true
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
