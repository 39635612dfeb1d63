// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-yamdb/models"
)

// Field names as they appear in request bodies.
const (
	FieldUsername         = "username"
	FieldEmail            = "email"
	FieldFirstName        = "first_name"
	FieldLastName         = "last_name"
	FieldRole             = "role"
	FieldConfirmationCode = "confirmation_code"
	FieldName             = "name"
	FieldSlug             = "slug"
	FieldYear             = "year"
	FieldCategory         = "category"
	FieldGenre            = "genre"
	FieldText             = "text"
	FieldScore            = "score"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254
	maxPersonalName   = 150
	maxNameLength     = 256
	maxSlugLength     = 50
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// RequestValidator implements Validator for every request payload of the
// service.
type RequestValidator struct {
	minScore int
	maxScore int
	now      func() time.Time
}

// NewRequestValidator builds a validator. Review scores must fall in
// [minScore, maxScore]; title years may not exceed the year of now().
func NewRequestValidator(minScore, maxScore int, now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &RequestValidator{minScore: minScore, maxScore: maxScore, now: now}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value)
	case *models.SignupRequest:
		return v.validateSignup(*value)

	case models.TokenRequest:
		return v.validateTokenRequest(value)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value)

	case models.Category:
		return v.validateNamedSlug(value.Name, value.Slug)
	case *models.Category:
		return v.validateNamedSlug(value.Name, value.Slug)
	case models.Genre:
		return v.validateNamedSlug(value.Name, value.Slug)
	case *models.Genre:
		return v.validateNamedSlug(value.Name, value.Slug)

	case models.TitleInput:
		return v.validateTitleInput(value, fields...)
	case *models.TitleInput:
		return v.validateTitleInput(*value, fields...)

	case models.ReviewInput:
		return v.validateReviewInput(value, fields...)
	case *models.ReviewInput:
		return v.validateReviewInput(*value, fields...)

	case models.CommentInput:
		return v.validateCommentInput(value, fields...)
	case *models.CommentInput:
		return v.validateCommentInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest) error {
	errs := &FieldError{}
	checkUsername(errs, req.Username)
	checkEmail(errs, req.Email)
	return errs.OrNil()
}

func (v *RequestValidator) validateTokenRequest(req models.TokenRequest) error {
	errs := &FieldError{}
	checkNotBlank(errs, FieldUsername, req.Username)
	checkNotBlank(errs, FieldConfirmationCode, req.ConfirmationCode)
	return errs.OrNil()
}

// validateUser validates a full user record as sent by an administrator.
func (v *RequestValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldFirstName, FieldLastName, FieldRole}
	}

	errs := &FieldError{}
	for _, field := range fields {
		switch field {
		case FieldUsername:
			checkUsername(errs, user.Username)
		case FieldEmail:
			checkEmail(errs, user.Email)
		case FieldFirstName:
			checkMaxLength(errs, FieldFirstName, user.FirstName, maxPersonalName)
		case FieldLastName:
			checkMaxLength(errs, FieldLastName, user.LastName, maxPersonalName)
		case FieldRole:
			checkRole(errs, user.Role)
		}
	}
	return errs.OrNil()
}

func (v *RequestValidator) validateUserUpdate(update models.UserUpdate) error {
	errs := &FieldError{}
	if update.Username != nil {
		checkUsername(errs, *update.Username)
	}
	if update.Email != nil {
		checkEmail(errs, *update.Email)
	}
	if update.FirstName != nil {
		checkMaxLength(errs, FieldFirstName, *update.FirstName, maxPersonalName)
	}
	if update.LastName != nil {
		checkMaxLength(errs, FieldLastName, *update.LastName, maxPersonalName)
	}
	if update.Role != nil {
		checkRole(errs, *update.Role)
	}
	return errs.OrNil()
}

func (v *RequestValidator) validateNamedSlug(name, slug string) error {
	errs := &FieldError{}
	if checkNotBlank(errs, FieldName, name) {
		checkMaxLength(errs, FieldName, name, maxNameLength)
	}
	if checkNotBlank(errs, FieldSlug, slug) && checkMaxLength(errs, FieldSlug, slug, maxSlugLength) {
		if !slugPattern.MatchString(slug) {
			errs.Add(FieldSlug, MsgInvalidSlug)
		}
	}
	return errs.OrNil()
}

func (v *RequestValidator) validateTitleInput(input models.TitleInput, required ...string) error {
	errs := &FieldError{}
	checkRequired(errs, required, map[string]bool{
		FieldName:     input.Name != nil,
		FieldYear:     input.Year != nil,
		FieldCategory: input.Category != nil,
		FieldGenre:    input.Genres != nil,
	})

	if input.Name != nil && checkNotBlank(errs, FieldName, *input.Name) {
		checkMaxLength(errs, FieldName, *input.Name, maxNameLength)
	}
	if input.Year != nil && *input.Year > v.now().Year() {
		errs.Add(FieldYear, MsgFutureYear)
	}
	if input.Category != nil {
		checkNotBlank(errs, FieldCategory, *input.Category)
	}
	if input.Genres != nil && slices.Contains(*input.Genres, "") {
		errs.Add(FieldGenre, MsgBlank)
	}
	return errs.OrNil()
}

func (v *RequestValidator) validateReviewInput(input models.ReviewInput, required ...string) error {
	errs := &FieldError{}
	checkRequired(errs, required, map[string]bool{
		FieldText:  input.Text != nil,
		FieldScore: input.Score != nil,
	})

	if input.Text != nil {
		checkNotBlank(errs, FieldText, *input.Text)
	}
	if input.Score != nil && (*input.Score < v.minScore || *input.Score > v.maxScore) {
		errs.Add(FieldScore, fmt.Sprintf(MsgInvalidScore, v.minScore, v.maxScore))
	}
	return errs.OrNil()
}

func (v *RequestValidator) validateCommentInput(input models.CommentInput, required ...string) error {
	errs := &FieldError{}
	checkRequired(errs, required, map[string]bool{FieldText: input.Text != nil})

	if input.Text != nil {
		checkNotBlank(errs, FieldText, *input.Text)
	}
	return errs.OrNil()
}

func checkRequired(errs *FieldError, required []string, present map[string]bool) {
	for _, field := range required {
		if !present[field] {
			errs.Add(field, MsgRequired)
		}
	}
}

// checkNotBlank reports whether value is non-blank, recording an error
// otherwise.
func checkNotBlank(errs *FieldError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MsgBlank)
		return false
	}
	return true
}

func checkMaxLength(errs *FieldError, field, value string, limit int) bool {
	if utf8.RuneCountInString(value) > limit {
		errs.Add(field, fmt.Sprintf(MsgMaxLength, limit))
		return false
	}
	return true
}

func checkUsername(errs *FieldError, username string) {
	if !checkNotBlank(errs, FieldUsername, username) {
		return
	}
	if !checkMaxLength(errs, FieldUsername, username, maxUsernameLength) {
		return
	}
	if !usernamePattern.MatchString(username) {
		errs.Add(FieldUsername, MsgInvalidUsername)
		return
	}
	if models.IsReservedUsername(username) {
		errs.Add(FieldUsername, MsgReservedUsername)
	}
}

func checkEmail(errs *FieldError, email string) {
	if !checkNotBlank(errs, FieldEmail, email) {
		return
	}
	if !checkMaxLength(errs, FieldEmail, email, maxEmailLength) {
		return
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs.Add(FieldEmail, MsgInvalidEmail)
	}
}

func checkRole(errs *FieldError, role models.Role) {
	if !role.Valid() {
		errs.Add(FieldRole, fmt.Sprintf(MsgInvalidChoice, string(role)))
	}
}
