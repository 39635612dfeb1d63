// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/confirmation"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/mailer"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/validators"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	CategoryService CategoryService
	GenreService    GenreService
	TitleService    TitleService
	ReviewService   ReviewService
	CommentService  CommentService
}

// NewServices wires every service over storages. now is the clock shared by
// the confirmation codec, token exchange and year validation; nil means
// time.Now.
func NewServices(storages *store.Storages, mail mailer.Mailer, cfg config.App, now func() time.Time, logger *logger.Logger) (*Services, error) {
	if now == nil {
		now = time.Now
	}

	codec, err := confirmation.NewCodec(cfg.SecretKey, cfg.CodeWindow, cfg.CodeGraceWindows, now)
	if err != nil {
		return nil, fmt.Errorf("error creating confirmation codec: %w", err)
	}

	validator := validators.NewRequestValidator(cfg.MinScore, cfg.MaxScore, now)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, mail, codec, validator, cfg, now, logger),
		UserService:     NewUserService(storages.UserRepository, validator, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, logger),
		GenreService:    NewGenreService(storages.GenreRepository, validator, logger),
		TitleService:    NewTitleService(storages.TitleRepository, storages.CategoryRepository, storages.GenreRepository, validator, logger),
		ReviewService:   NewReviewService(storages.ReviewRepository, storages.TitleRepository, validator, logger),
		CommentService:  NewCommentService(storages.CommentRepository, storages.ReviewRepository, validator, logger),
	}, nil
}
