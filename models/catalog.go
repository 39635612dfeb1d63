// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category groups titles by kind (film, book, music...). A title belongs to
// at most one category.
type Category struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Genre tags titles. A title may carry any number of genres.
type Genre struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Title is a creative work that can be reviewed.
type Title struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Rating      *int      `json:"rating"`
	Description *string   `json:"description"`
	Genres      []Genre   `json:"genre"`
	Category    *Category `json:"category"`
}

// TitleInput is the write representation of a title: relations are given by
// slug. On PATCH every nil field is left untouched.
type TitleInput struct {
	Name        *string   `json:"name,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genres      *[]string `json:"genre,omitempty"`
	Category    *string   `json:"category,omitempty"`
}

// TitleFilter narrows GET /titles. Zero values are ignored.
type TitleFilter struct {
	// Category is a category slug (exact match).
	Category string
	// Genre is a genre slug (exact match).
	Genre string
	// Name matches case-insensitively anywhere in the title name.
	Name string
	Year int
}
