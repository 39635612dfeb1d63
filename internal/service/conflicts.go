// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-yamdb/internal/store"
	"github.com/MKhiriev/go-yamdb/internal/validators"
	"github.com/MKhiriev/go-yamdb/models"
)

// conflictError reports which of username and email already belong to a
// user other than selfID. Empty values are not checked. The result matches
// both *validators.FieldError and the store sentinels.
func conflictError(users []models.User, username, email string, selfID int64) error {
	fieldErr := &validators.FieldError{}
	var causes []error

	for _, u := range users {
		if u.UserID == selfID {
			continue
		}
		if username != "" && u.Username == username {
			fieldErr.Add(validators.FieldUsername, store.ErrUsernameAlreadyExists.Error())
			causes = append(causes, store.ErrUsernameAlreadyExists)
		}
		if email != "" && u.Email == email {
			fieldErr.Add(validators.FieldEmail, store.ErrEmailAlreadyExists.Error())
			causes = append(causes, store.ErrEmailAlreadyExists)
		}
	}

	if fieldErr.Empty() {
		return nil
	}
	return errors.Join(append([]error{fieldErr}, causes...)...)
}

// storeConflictError turns a uniqueness violation raced at write time into
// the same field error the pre-check would have produced. Other errors are
// returned wrapped.
func storeConflictError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return fmt.Errorf("%w: %w", validators.NewFieldError(validators.FieldUsername, store.ErrUsernameAlreadyExists.Error()), err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", validators.NewFieldError(validators.FieldEmail, store.ErrEmailAlreadyExists.Error()), err)
	case errors.Is(err, store.ErrSlugAlreadyExists):
		return fmt.Errorf("%w: %w", validators.NewFieldError(validators.FieldSlug, store.ErrSlugAlreadyExists.Error()), err)
	default:
		return fmt.Errorf("storage error: %w", err)
	}
}
