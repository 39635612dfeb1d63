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

// userService administers accounts. Uniqueness is checked against other
// records before writing and enforced again by the database.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a [UserService] for profile and user
// administration operations.
//
// Parameters:
//
//	userRepository - user storage
//	validator      - validates username, email and role changes
//	logger         - base logger
//
// Returns:
//
//	UserService - ready-to-use service, safe for concurrent use
func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	users, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.List").Msg("listing users failed")
		return models.Page[models.User]{}, fmt.Errorf("listing users failed: %w", err)
	}
	return checkPage(users, page)
}

// Create adds an account on behalf of an administrator. The role defaults to
// user.
func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	user.IsSuperuser = false
	return s.create(ctx, user)
}

// CreateSuperuser adds an account that holds admin privileges whatever its
// role. It is reachable from the command line only.
func (s *userService) CreateSuperuser(ctx context.Context, username, email string) (models.User, error) {
	user, err := s.create(ctx, models.User{Username: username, Email: email, IsSuperuser: true})
	if err != nil {
		return models.User{}, err
	}
	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("superuser created")
	return user, nil
}

func (s *userService) create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	existing, err := s.userRepository.FindUsersByUsernameOrEmail(ctx, user.Username, user.Email)
	if err != nil {
		log.Err(err).Str("func", "*userService.create").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if err = conflictError(existing, user.Username, user.Email, 0); err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.create").Msg("user creation ended with error")
		return models.User{}, storeConflictError(err)
	}
	return created, nil
}

func (s *userService) Get(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	return s.update(ctx, user, update)
}

func (s *userService) Delete(ctx context.Context, username string) error {
	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}

	if err = s.userRepository.DeleteUser(ctx, user.UserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Delete").Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}
	return nil
}

func (s *userService) Me(ctx context.Context, actor *models.User) (models.User, error) {
	if actor == nil {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateMe(ctx context.Context, actor *models.User, update models.UserUpdate) (models.User, error) {
	user, err := s.Me(ctx, actor)
	if err != nil {
		return models.User{}, err
	}

	update.Role = nil
	return s.update(ctx, user, update)
}

func (s *userService) update(ctx context.Context, user models.User, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	var username, email string
	if update.Username != nil && *update.Username != user.Username {
		username = *update.Username
	}
	if update.Email != nil && *update.Email != user.Email {
		email = *update.Email
	}
	if username != "" || email != "" {
		existing, err := s.userRepository.FindUsersByUsernameOrEmail(ctx, username, email)
		if err != nil {
			log.Err(err).Str("func", "*userService.update").Msg("user lookup failed")
			return models.User{}, fmt.Errorf("user lookup failed: %w", err)
		}
		if err = conflictError(existing, username, email, user.UserID); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.userRepository.UpdateUser(ctx, user.UserID, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.update").Msg("user update failed")
		return models.User{}, storeConflictError(err)
	}
	return updated, nil
}
