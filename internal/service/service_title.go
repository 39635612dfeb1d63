// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

type titleService struct {
	titleRepository    store.TitleRepository
	categoryRepository store.CategoryRepository
	genreRepository    store.GenreRepository
	validator          validators.Validator

	logger *logger.Logger
}

// NewTitleService constructs a [TitleService]. Category and genre
// repositories resolve the slugs a title refers to; an unknown slug is a
// field error, not a missing title.
func NewTitleService(
	titleRepository store.TitleRepository,
	categoryRepository store.CategoryRepository,
	genreRepository store.GenreRepository,
	validator validators.Validator,
	logger *logger.Logger,
) TitleService {
	return &titleService{
		titleRepository:    titleRepository,
		categoryRepository: categoryRepository,
		genreRepository:    genreRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (s *titleService) List(ctx context.Context, filter models.TitleFilter, page models.PageRequest) (models.Page[models.Title], error) {
	titles, err := s.titleRepository.ListTitles(ctx, filter, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*titleService.List").Msg("listing titles failed")
		return models.Page[models.Title]{}, fmt.Errorf("listing titles failed: %w", err)
	}
	return checkPage(titles, page)
}

func (s *titleService) Get(ctx context.Context, titleID int64) (models.Title, error) {
	title, err := s.titleRepository.GetTitle(ctx, titleID)
	if err != nil {
		return models.Title{}, fmt.Errorf("title search failed: %w", err)
	}
	return title, nil
}

// Create stores a title. Name, year, category and genre are required;
// category and genres are given by slug and must exist.
func (s *titleService) Create(ctx context.Context, input models.TitleInput) (models.Title, error) {
	err := s.validator.Validate(ctx, input,
		validators.FieldName, validators.FieldYear, validators.FieldCategory, validators.FieldGenre)
	if err != nil {
		return models.Title{}, err
	}

	changes, err := s.resolve(ctx, input)
	if err != nil {
		return models.Title{}, err
	}

	titleID, err := s.titleRepository.CreateTitle(ctx, changes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*titleService.Create").Msg("title creation failed")
		return models.Title{}, fmt.Errorf("title creation failed: %w", err)
	}
	return s.Get(ctx, titleID)
}

// Update applies the fields present in input. A present genre list replaces
// the whole set.
func (s *titleService) Update(ctx context.Context, titleID int64, input models.TitleInput) (models.Title, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Title{}, err
	}

	changes, err := s.resolve(ctx, input)
	if err != nil {
		return models.Title{}, err
	}

	if err = s.titleRepository.UpdateTitle(ctx, titleID, changes); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*titleService.Update").Msg("title update failed")
		return models.Title{}, fmt.Errorf("title update failed: %w", err)
	}
	return s.Get(ctx, titleID)
}

func (s *titleService) Delete(ctx context.Context, titleID int64) error {
	if err := s.titleRepository.DeleteTitle(ctx, titleID); err != nil {
		return fmt.Errorf("title deletion failed: %w", err)
	}
	return nil
}

// resolve turns the slugs of input into ids. Unknown slugs are field errors.
func (s *titleService) resolve(ctx context.Context, input models.TitleInput) (store.TitleChanges, error) {
	changes := store.TitleChanges{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
	}
	fieldErr := &validators.FieldError{}

	if input.Category != nil {
		found, err := s.categoryRepository.FindBySlugs(ctx, []string{*input.Category})
		if err != nil {
			return store.TitleChanges{}, fmt.Errorf("category lookup failed: %w", err)
		}
		if len(found) == 0 {
			fieldErr.Add(validators.FieldCategory, fmt.Sprintf(validators.MsgUnknownSlug, *input.Category))
		} else {
			changes.CategoryID = &found[0].ID
		}
	}

	if input.Genres != nil {
		slugs := slices.Compact(slices.Sorted(slices.Values(*input.Genres)))
		found, err := s.genreRepository.FindBySlugs(ctx, slugs)
		if err != nil {
			return store.TitleChanges{}, fmt.Errorf("genre lookup failed: %w", err)
		}

		ids := make([]int64, 0, len(found))
		known := make(map[string]bool, len(found))
		for _, g := range found {
			ids = append(ids, g.ID)
			known[g.Slug] = true
		}
		for _, slug := range *input.Genres {
			if !known[slug] {
				fieldErr.Add(validators.FieldGenre, fmt.Sprintf(validators.MsgUnknownSlug, slug))
				break
			}
		}
		changes.GenreIDs = &ids
	}

	if err := fieldErr.OrNil(); err != nil {
		return store.TitleChanges{}, err
	}
	return changes, nil
}
