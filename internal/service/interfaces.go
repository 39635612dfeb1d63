// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations behind every endpoint.
//
// Services validate input, resolve references, apply object-level
// authorization with the resource owner and translate storage conflicts into
// field errors. Route-level rules (who may call an endpoint at all) are
// applied by the transport before a service is reached.
package service

import (
	"context"

	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/models"
)

type AuthService interface {
	// Signup registers a new account and mails it a confirmation code.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	// ExchangeToken trades a valid confirmation code for an access token.
	ExchangeToken(ctx context.Context, req models.TokenRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses tokenString and loads the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type UserService interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
	Create(ctx context.Context, user models.User) (models.User, error)
	// CreateSuperuser bootstraps an account with unconditional admin rights.
	CreateSuperuser(ctx context.Context, username, email string) (models.User, error)
	Get(ctx context.Context, username string) (models.User, error)
	Update(ctx context.Context, username string, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, username string) error

	// Me returns the current record of actor.
	Me(ctx context.Context, actor *models.User) (models.User, error)
	// UpdateMe edits actor's own profile; the role cannot be changed.
	UpdateMe(ctx context.Context, actor *models.User, update models.UserUpdate) (models.User, error)
}

type SlugService[T store.Slugged] interface {
	List(ctx context.Context, page models.PageRequest) (models.Page[T], error)
	Create(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, slug string) error
}

type (
	CategoryService = SlugService[models.Category]
	GenreService    = SlugService[models.Genre]
)

type TitleService interface {
	List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) (models.Page[models.Title], error)
	Get(ctx context.Context, titleID int64) (models.Title, error)
	Create(ctx context.Context, input models.TitleInput) (models.Title, error)
	Update(ctx context.Context, titleID int64, input models.TitleInput) (models.Title, error)
	Delete(ctx context.Context, titleID int64) error
}

// ReviewService manages the reviews of one title. The title id and the
// actor are always passed explicitly.
type ReviewService interface {
	List(ctx context.Context, titleID int64, page models.PageRequest) (models.Page[models.Review], error)
	Get(ctx context.Context, titleID, reviewID int64) (models.Review, error)
	Create(ctx context.Context, actor *models.User, titleID int64, input models.ReviewInput) (models.Review, error)
	Update(ctx context.Context, actor *models.User, titleID, reviewID int64, input models.ReviewInput) (models.Review, error)
	Delete(ctx context.Context, actor *models.User, titleID, reviewID int64) error
}

// CommentService manages the comments of one review. The review must belong
// to the title in the path.
type CommentService interface {
	List(ctx context.Context, titleID, reviewID int64, page models.PageRequest) (models.Page[models.Comment], error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (models.Comment, error)
	Create(ctx context.Context, actor *models.User, titleID, reviewID int64, input models.CommentInput) (models.Comment, error)
	Update(ctx context.Context, actor *models.User, titleID, reviewID, commentID int64, input models.CommentInput) (models.Comment, error)
	Delete(ctx context.Context, actor *models.User, titleID, reviewID, commentID int64) error
}
