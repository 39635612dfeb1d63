// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-yamdb/internal/config"
	"github.com/MKhiriev/go-yamdb/internal/confirmation"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/internal/mailer"
	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/utils"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

// authService is the concrete implementation of AuthService.
// It registers users, mails them confirmation codes and exchanges verified
// codes for signed JWTs. Nothing about a code is stored: the codec derives
// it from the user record.
type authService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer
	codec          *confirmation.Codec
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	mail mailer.Mailer,
	codec *confirmation.Codec,
	validator validators.Validator,
	cfg config.App,
	now func() time.Time,
	logger *logger.Logger,
) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		userRepository: userRepository,
		mailer:         mail,
		codec:          codec,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            now,
		logger:         logger,
	}
}

// Signup registers req.Username with req.Email and mails a confirmation
// code.
//
// When the exact pair is already registered, a code is mailed again and
// ErrConfirmationCodeResent is returned. A username or email held by
// another record is a field error wrapping the store conflict sentinel.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	existing, err := a.userRepository.FindUsersByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	for _, user := range existing {
		if user.Username == req.Username && user.Email == req.Email {
			if err = a.sendCode(ctx, user); err != nil {
				return models.User{}, err
			}
			log.Info().Str("func", "*authService.Signup").Int64("user_id", user.UserID).Msg("confirmation code resent")
			return models.User{}, ErrConfirmationCodeResent
		}
	}

	if err = conflictError(existing, req.Username, req.Email, 0); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, storeConflictError(err)
	}

	if err = a.sendCode(ctx, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (a *authService) sendCode(ctx context.Context, user models.User) error {
	code := a.codec.Issue(user)
	if err := a.mailer.Send(ctx, mailer.ConfirmationMessage(user.Email, user.Username, code)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.sendCode").Int64("user_id", user.UserID).Msg("confirmation code was not sent")
		return fmt.Errorf("%w: %w", ErrSendingConfirmationCode, err)
	}
	return nil
}

// ExchangeToken verifies req.ConfirmationCode for req.Username and returns a
// signed access token.
//
// A successful exchange stamps LastLogin, which invalidates the code that
// was just used together with every other code issued before.
func (a *authService) ExchangeToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("func", "*authService.ExchangeToken").Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.codec.Verify(&user, req.ConfirmationCode) {
		log.Warn().Str("func", "*authService.ExchangeToken").Int64("user_id", user.UserID).Msg("invalid confirmation code")
		return models.Token{}, ErrInvalidConfirmationCode
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.UserID, a.now()); err != nil {
		log.Err(err).Str("func", "*authService.ExchangeToken").Msg("last login update failed")
		return models.Token{}, fmt.Errorf("last login update failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate resolves a bearer token to its user. A token of a deleted
// user is as invalid as a forged one.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	return &user, nil
}
