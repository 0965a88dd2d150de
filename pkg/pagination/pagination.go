// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination pages the person picker: GET /api/v1/persons?q=&page=&limit=.
//
// Rosters themselves are never paginated; a movie's cast is returned whole.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	// MaxLimit keeps one picker page within a single search round trip.
	MaxLimit = 100
)

// Params is a 1-indexed page request.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of matches skipped before this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for this page given the total match count.
func (p Params) Meta(total int) Meta {
	return NewMeta(p.Page, p.Limit, total)
}

// Meta is the "meta" block of a paginated envelope.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta derives TotalPages from total and limit. A zero limit yields zero pages.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest reads "page" and "limit" from the query string.
//
// Missing or unparsable values fall back to the defaults, a page below 1
// becomes 1, and a limit is clamped into [1, MaxLimit].
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := intOr(query.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := intOr(query.Get("limit"), DefaultLimit)
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

func intOr(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
