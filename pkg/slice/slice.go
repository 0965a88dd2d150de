// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice complements the standard [slices] package with generic mapping.
package slice

// Map applies transform to every element of input.
//
// A nil input yields nil, an empty input yields an empty slice.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}
