// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a user lookup, update or delete
	// matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when a category, genre, title, review or
	// comment does not exist (or does not belong to the parent in the path).
	ErrNotFound = errors.New("Not found.")

	// ErrUsernameAlreadyExists is returned when an insert or update collides
	// with the unique username of another user.
	ErrUsernameAlreadyExists = errors.New("A user with that username already exists.")

	// ErrEmailAlreadyExists is returned when an insert or update collides with
	// the unique email of another user.
	ErrEmailAlreadyExists = errors.New("A user with that email already exists.")

	// ErrSlugAlreadyExists is returned when a category or genre slug is taken.
	ErrSlugAlreadyExists = errors.New("An object with this slug already exists.")

	// ErrReviewAlreadyExists is returned when an author reviews the same
	// title twice.
	ErrReviewAlreadyExists = errors.New("Such a review already exists.")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so the transport maps them to 500.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
