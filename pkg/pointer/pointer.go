// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Person and movie inputs carry optional fields as pointers (an absent
photo URL is nil, not ""). These helpers keep that plumbing short.
*/
package pointer

// To returns a pointer to the provided value.
//
// It is handy for literals in optional fields, e.g. pointer.To("2006-01-02").
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value of T when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
