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

// reviewService stores reviews and applies the ownership rule to edits.
// Authorization runs before input validation, so a stranger's malformed
// edit is denied rather than reported as invalid.
type reviewService struct {
	reviewRepository store.ReviewRepository
	titleRepository  store.TitleRepository
	validator        validators.Validator

	logger *logger.Logger
}

// NewReviewService constructs a [ReviewService].
//
// The title repository is used to reject reviews of titles that do not
// exist; one review per author and title is enforced by storage.
//
// Parameters:
//
//	reviewRepository - review storage
//	titleRepository  - resolves the reviewed title
//	validator        - validates text and score range
//	logger           - base logger
//
// Returns:
//
//	ReviewService - ready-to-use service, safe for concurrent use
//
// Example usage:
//
//	reviews := service.NewReviewService(storages.ReviewRepository, storages.TitleRepository, validator, log)
//	text, score := "Great", 9
//	review, err := reviews.Create(ctx, actor, titleID, models.ReviewInput{Text: &text, Score: &score})
func NewReviewService(
	reviewRepository store.ReviewRepository,
	titleRepository store.TitleRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		titleRepository:  titleRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *reviewService) List(ctx context.Context, titleID int64, page models.PageRequest) (models.Page[models.Review], error) {
	if _, err := s.titleRepository.GetTitle(ctx, titleID); err != nil {
		return models.Page[models.Review]{}, fmt.Errorf("title search failed: %w", err)
	}

	reviews, err := s.reviewRepository.ListReviews(ctx, titleID, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.List").Msg("listing reviews failed")
		return models.Page[models.Review]{}, fmt.Errorf("listing reviews failed: %w", err)
	}
	return checkPage(reviews, page)
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID int64) (models.Review, error) {
	review, err := s.reviewRepository.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return models.Review{}, fmt.Errorf("review search failed: %w", err)
	}
	return review, nil
}

// Create stores a review of titleID authored by actor.
func (s *reviewService) Create(ctx context.Context, actor *models.User, titleID int64, input models.ReviewInput) (models.Review, error) {
	if err := policy.Evaluate(policy.Request{Method: http.MethodPost, Actor: actor}, policy.AuthenticatedOrReadOnly); err != nil {
		return models.Review{}, err
	}
	if err := s.validator.Validate(ctx, input, validators.FieldText, validators.FieldScore); err != nil {
		return models.Review{}, err
	}
	if _, err := s.titleRepository.GetTitle(ctx, titleID); err != nil {
		return models.Review{}, fmt.Errorf("title search failed: %w", err)
	}

	review, err := s.reviewRepository.CreateReview(ctx, models.Review{
		TitleID:  titleID,
		AuthorID: actor.UserID,
		Text:     *input.Text,
		Score:    *input.Score,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.Create").Msg("review creation failed")
		return models.Review{}, fmt.Errorf("review creation failed: %w", err)
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, actor *models.User, titleID, reviewID int64, input models.ReviewInput) (models.Review, error) {
	review, err := s.authorize(ctx, http.MethodPatch, actor, titleID, reviewID)
	if err != nil {
		return models.Review{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Review{}, err
	}

	if err = s.reviewRepository.UpdateReview(ctx, review.ID, input); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.Update").Msg("review update failed")
		return models.Review{}, fmt.Errorf("review update failed: %w", err)
	}
	return s.Get(ctx, titleID, reviewID)
}

func (s *reviewService) Delete(ctx context.Context, actor *models.User, titleID, reviewID int64) error {
	review, err := s.authorize(ctx, http.MethodDelete, actor, titleID, reviewID)
	if err != nil {
		return err
	}

	if err = s.reviewRepository.DeleteReview(ctx, review.ID); err != nil {
		return fmt.Errorf("review deletion failed: %w", err)
	}
	return nil
}

// authorize loads the review and checks that actor may change it.
func (s *reviewService) authorize(ctx context.Context, method string, actor *models.User, titleID, reviewID int64) (models.Review, error) {
	if actor == nil {
		return models.Review{}, policy.ErrNotAuthenticated
	}

	review, err := s.Get(ctx, titleID, reviewID)
	if err != nil {
		return models.Review{}, err
	}

	err = policy.Evaluate(policy.Request{Method: method, Actor: actor, Owner: &review.AuthorID}, policy.SelfOrElevatedWrite)
	if err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*reviewService.authorize").
			Int64("actor_id", actor.UserID).Int64("review_id", reviewID).Msg("review change denied")
		return models.Review{}, err
	}
	return review, nil
}
