// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug folds arbitrary Unicode strings into lowercase ASCII keys.
//
// # Usage
//
// Person rows store the folded form of their name in search_name so that
// "agnes" finds "Agnès Varda". Search queries are folded the same way.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any run of characters outside [a-z0-9-].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// From converts s into a hyphen-separated ASCII key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (é becomes e plus a combining acute).
// 2. Removes combining marks.
// 3. Lowercases.
// 4. Replaces anything that is not a letter or digit with a hyphen.
// 5. Collapses repeated hyphens and trims them from both ends.
func From(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// Letters without an ASCII decomposition (ø, ł) fall out here.
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
