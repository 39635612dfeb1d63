// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/policy"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	reviewRepository  store.ReviewRepository
	validator         validators.Validator

	logger *logger.Logger
}

// NewCommentService constructs a [CommentService].
//
// Comments hang off a review that must belong to the title in the request
// path, so the service needs the review repository to resolve that parent
// before touching comments.
//
// Parameters:
//
//	commentRepository - comment storage
//	reviewRepository  - used to check that the parent review exists under the title
//	validator         - validates comment text
//	logger            - base logger
//
// Returns:
//
//	CommentService - ready-to-use service, safe for concurrent use
//
// Example usage:
//
//	comments := service.NewCommentService(storages.CommentRepository, storages.ReviewRepository, validator, log)
//	page, err := comments.List(ctx, titleID, reviewID, models.PageRequest{Number: 1, Size: 10})
func NewCommentService(
	commentRepository store.CommentRepository,
	reviewRepository store.ReviewRepository,
	validator validators.Validator,
	logger *logger.Logger,
) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		reviewRepository:  reviewRepository,
		validator:         validator,
		logger:            logger,
	}
}

// review checks that reviewID exists under titleID.
func (s *commentService) review(ctx context.Context, titleID, reviewID int64) error {
	if _, err := s.reviewRepository.GetReview(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("review search failed: %w", err)
	}
	return nil
}

func (s *commentService) List(ctx context.Context, titleID, reviewID int64, page models.PageRequest) (models.Page[models.Comment], error) {
	if err := s.review(ctx, titleID, reviewID); err != nil {
		return models.Page[models.Comment]{}, err
	}

	comments, err := s.commentRepository.ListComments(ctx, reviewID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.List").Msg("listing comments failed")
		return models.Page[models.Comment]{}, fmt.Errorf("listing comments failed: %w", err)
	}
	return checkPage(comments, page)
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (models.Comment, error) {
	if err := s.review(ctx, titleID, reviewID); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.GetComment(ctx, reviewID, commentID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("comment search failed: %w", err)
	}
	return comment, nil
}

func (s *commentService) Create(ctx context.Context, actor *models.User, titleID, reviewID int64, input models.CommentInput) (models.Comment, error) {
	if err := policy.Evaluate(policy.Request{Method: http.MethodPost, Actor: actor}, policy.AuthenticatedOrReadOnly); err != nil {
		return models.Comment{}, err
	}
	if err := s.validator.Validate(ctx, input, validators.FieldText); err != nil {
		return models.Comment{}, err
	}
	if err := s.review(ctx, titleID, reviewID); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.Comment{
		ReviewID: reviewID,
		AuthorID: actor.UserID,
		Text:     *input.Text,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.Create").Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, actor *models.User, titleID, reviewID, commentID int64, input models.CommentInput) (models.Comment, error) {
	comment, err := s.authorize(ctx, http.MethodPatch, actor, titleID, reviewID, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Comment{}, err
	}

	if err = s.commentRepository.UpdateComment(ctx, comment.ID, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentService.Update").Msg("comment update failed")
		return models.Comment{}, fmt.Errorf("comment update failed: %w", err)
	}
	return s.Get(ctx, titleID, reviewID, commentID)
}

func (s *commentService) Delete(ctx context.Context, actor *models.User, titleID, reviewID, commentID int64) error {
	comment, err := s.authorize(ctx, http.MethodDelete, actor, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if err = s.commentRepository.DeleteComment(ctx, comment.ID); err != nil {
		return fmt.Errorf("comment deletion failed: %w", err)
	}
	return nil
}

func (s *commentService) authorize(ctx context.Context, method string, actor *models.User, titleID, reviewID, commentID int64) (models.Comment, error) {
	if actor == nil {
		return models.Comment{}, policy.ErrNotAuthenticated
	}

	comment, err := s.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return models.Comment{}, err
	}

	err = policy.Evaluate(policy.Request{Method: method, Actor: actor, Owner: &comment.AuthorID}, policy.SelfOrElevatedWrite)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*commentService.authorize").
			Int64("actor_id", actor.UserID).Int64("comment_id", commentID).Msg("comment change denied")
		return models.Comment{}, err
	}
	return comment, nil
}
