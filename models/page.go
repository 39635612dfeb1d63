// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PageRequest selects one page of a list endpoint.
type PageRequest struct {
	// Number is 1-based.
	Number int
	Size   int
	// Search is an optional case-insensitive substring filter.
	Search string
}

// Offset returns the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Page is one page of results plus the total number of matching rows.
type Page[T any] struct {
	Count   int
	Results []T
}

// HasNext reports whether another page follows req.
func (p Page[T]) HasNext(req PageRequest) bool {
	return req.Offset()+len(p.Results) < p.Count
}

// PageResponse is the JSON envelope of paginated list endpoints.
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
