// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

// slugService serves categories or genres.
type slugService[T store.Slugged] struct {
	repository store.SlugRepository[T]
	validator  validators.Validator
	name       string

	logger *logger.Logger
}

// NewCategoryService constructs a [CategoryService] over the category
// repository. Slugs are validated before they reach storage and a duplicate
// slug surfaces as [store.ErrSlugAlreadyExists].
//
// Parameters:
//
//	repository - category storage
//	validator  - field validator for name and slug
//	logger     - base logger; request loggers are taken from the context
//
// Returns:
//
//	CategoryService - ready-to-use service, safe for concurrent use
func NewCategoryService(repository store.CategoryRepository, validator validators.Validator, logger *logger.Logger) CategoryService {
	return &slugService[models.Category]{repository: repository, validator: validator, name: "category", logger: logger}
}

// NewGenreService constructs a [GenreService]. It behaves exactly like
// [NewCategoryService] over the genres table.
func NewGenreService(repository store.GenreRepository, validator validators.Validator, logger *logger.Logger) GenreService {
	return &slugService[models.Genre]{repository: repository, validator: validator, name: "genre", logger: logger}
}

func (s *slugService[T]) List(ctx context.Context, page models.PageRequest) (models.Page[T], error) {
	items, err := s.repository.List(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*slugService.List").Str("kind", s.name).Msg("listing failed")
		return models.Page[T]{}, fmt.Errorf("listing %s failed: %w", s.name, err)
	}
	return checkPage(items, page)
}

func (s *slugService[T]) Create(ctx context.Context, item T) (T, error) {
	if err := s.validator.Validate(ctx, item); err != nil {
		return item, err
	}

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*slugService.Create").Str("kind", s.name).Msg("creation failed")
		return item, storeConflictError(err)
	}
	return created, nil
}

func (s *slugService[T]) Delete(ctx context.Context, slug string) error {
	if err := s.repository.Delete(ctx, slug); err != nil {
		return fmt.Errorf("deleting %s failed: %w", s.name, err)
	}
	return nil
}
