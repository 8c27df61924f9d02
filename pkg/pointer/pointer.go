// Copyright (c) 2026 Codeflix. All rights reserved.

/*
Package pointer provides utilities for working with pointers in Go.

It utilizes generics to simplify the creation and dereferencing of pointers
cleanly, avoiding boilerplate in the application logic. Optional API fields
(nullable description, nullable is_active) lean on these helpers.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful when passing a literal to a struct field that expects a pointer.
func To[T any](v T) *T {
	return &v
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
