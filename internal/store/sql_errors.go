// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Violation is the kind of integrity constraint a failed statement broke.
type Violation int

const (
	// NoViolation means the error is not a constraint violation.
	NoViolation Violation = iota
	UniqueViolation
	ForeignKeyViolation
)

// ErrorClassifier turns a driver error into a driver-independent
// constraint classification.
type ErrorClassifier interface {
	// Classify reports the violation kind of err together with a hint that
	// identifies the constraint (its name on PostgreSQL, the driver message
	// on SQLite).
	Classify(err error) (Violation, string)
}

// PostgresErrorClassifier implements [ErrorClassifier] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) (Violation, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NoViolation, ""
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation, pgErr.ConstraintName
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation, pgErr.ConstraintName
	default:
		return NoViolation, ""
	}
}

// SQLiteErrorClassifier implements [ErrorClassifier] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) (Violation, string) {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return NoViolation, ""
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation, liteErr.Error()
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation, liteErr.Error()
	default:
		return NoViolation, ""
	}
}

// userConflict maps a unique violation on the users table to the sentinel
// of the column it hit.
func userConflict(hint string) error {
	if strings.Contains(hint, "email") {
		return ErrEmailAlreadyExists
	}
	return ErrUsernameAlreadyExists
}
