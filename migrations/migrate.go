// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of the review service, one directory
// per supported database dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	ErrNilDB            = errors.New("migration error: db is nil")
	ErrUnknownDialect   = errors.New("migration error: unknown dialect")
	ErrMigrationsFailed = errors.New("migration error")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]goose.Dialect{
	DialectPostgres: goose.DialectPostgres,
	DialectSQLite:   goose.DialectSQLite3,
}

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	provider, err := newProvider(db, dialect, gooseDialect)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrationsFailed, err)
	}

	return nil
}

// Sources lists the migration files embedded for dialect, in apply order.
func Sources(dialect string) ([]string, error) {
	if _, ok := gooseDialects[dialect]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	return fs.Glob(embedMigrations, dialect+"/*.sql")
}

func newProvider(db *sql.DB, dialect string, gooseDialect goose.Dialect) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return nil, fmt.Errorf("%w: opening embedded %s migrations: %w", ErrMigrationsFailed, dialect, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%w: creating provider: %w", ErrMigrationsFailed, err)
	}

	return provider, nil
}
