// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-yamdb/internal/logger"

// Storages aggregates every repository of the service over one connection.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	GenreRepository    GenreRepository
	TitleRepository    TitleRepository
	ReviewRepository   ReviewRepository
	CommentRepository  CommentRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		GenreRepository:    NewGenreRepository(db, log),
		TitleRepository:    NewTitleRepository(db, log),
		ReviewRepository:   NewReviewRepository(db, log),
		CommentRepository:  NewCommentRepository(db, log),
	}
}
