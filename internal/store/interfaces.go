// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-yamdb/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUsersByUsernameOrEmail returns every user whose username equals
	// username or whose email equals email (at most two records).
	FindUsersByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	DeleteUser(ctx context.Context, userID int64) error
}

// Slugged is the set of catalog entities addressed by slug.
type Slugged interface {
	models.Category | models.Genre
}

// SlugRepository persists categories or genres.
type SlugRepository[T Slugged] interface {
	Create(ctx context.Context, item T) (T, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]T, error)
	List(ctx context.Context, page models.PageRequest) (models.Page[T], error)
	Delete(ctx context.Context, slug string) error
}

type (
	CategoryRepository = SlugRepository[models.Category]
	GenreRepository    = SlugRepository[models.Genre]
)

// TitleChanges is the write form of a title: references are resolved to ids.
// Nil fields are left untouched on update; on create Name, Year, CategoryID
// and GenreIDs are set by the caller.
type TitleChanges struct {
	Name        *string
	Year        *int
	Description *string
	CategoryID  *int64
	GenreIDs    *[]int64
}

// TitleRepository persists titles together with their genre links.
type TitleRepository interface {
	CreateTitle(ctx context.Context, changes TitleChanges) (int64, error)
	GetTitle(ctx context.Context, titleID int64) (models.Title, error)
	ListTitles(ctx context.Context, filter models.TitleFilter, page models.PageRequest) (models.Page[models.Title], error)
	UpdateTitle(ctx context.Context, titleID int64, changes TitleChanges) error
	DeleteTitle(ctx context.Context, titleID int64) error
}

// ReviewRepository persists reviews. Lookups are scoped to the parent title.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReview(ctx context.Context, titleID, reviewID int64) (models.Review, error)
	ListReviews(ctx context.Context, titleID int64, page models.PageRequest) (models.Page[models.Review], error)
	UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) error
	DeleteReview(ctx context.Context, reviewID int64) error
}

// CommentRepository persists comments. Lookups are scoped to the parent
// review.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetComment(ctx context.Context, reviewID, commentID int64) (models.Comment, error)
	ListComments(ctx context.Context, reviewID int64, page models.PageRequest) (models.Page[models.Comment], error)
	UpdateComment(ctx context.Context, commentID int64, input models.CommentInput) error
	DeleteComment(ctx context.Context, commentID int64) error
}
