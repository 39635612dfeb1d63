// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Review is a scored opinion of one author about one title. Each author may
// review a given title only once.
type Review struct {
	ID      int64     `json:"id"`
	TitleID int64     `json:"title"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`

	// AuthorID is the owner of the review; it never changes after creation.
	AuthorID int64 `json:"-"`
	// Author is the owner's username as rendered to clients.
	Author string `json:"author"`
}

// ReviewInput is the client-writable part of a review. On PATCH every nil
// field is left untouched.
type ReviewInput struct {
	Text  *string `json:"text,omitempty"`
	Score *int    `json:"score,omitempty"`
}

// Comment is a reply to a review.
type Comment struct {
	ID       int64     `json:"id"`
	ReviewID int64     `json:"-"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`

	// AuthorID is the owner of the comment; it never changes after creation.
	AuthorID int64  `json:"-"`
	Author   string `json:"author"`
}

// CommentInput is the client-writable part of a comment.
type CommentInput struct {
	Text *string `json:"text,omitempty"`
}
