// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/models"
)

// slugRepository implements [SlugRepository] for one of the catalog tables.
// Category and Genre share their shape, so values convert through
// slugEntity.
type slugRepository[T Slugged] struct {
	logger *logger.Logger
	db     *DB
	table  string
}

type slugEntity struct {
	ID   int64
	Name string
	Slug string
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// categories table.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &slugRepository[models.Category]{db: db, logger: logger, table: categoriesTable}
}

// NewGenreRepository constructs a [GenreRepository] backed by the genres
// table.
func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &slugRepository[models.Genre]{db: db, logger: logger, table: genresTable}
}

func (r *slugRepository[T]) fn(method string) string {
	return fmt.Sprintf("*slugRepository[%s].%s", r.table, method)
}

func (r *slugRepository[T]) Create(ctx context.Context, item T) (T, error) {
	log := logger.FromContext(ctx)
	e := slugEntity(item)

	query, args, err := buildInsertSlugQuery(r.db.builder, r.table, e.Name, e.Slug)
	if err != nil {
		return item, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		log.Err(err).Str("func", r.fn("Create")).Msg("error inserting row")
		return item, r.db.classify(err, ErrExecutingQuery, func(string) error {
			return ErrSlugAlreadyExists
		})
	}

	return T(e), nil
}

// FindBySlugs returns the items whose slug is in slugs, ordered by id.
// Unknown slugs are skipped; the caller compares lengths.
func (r *slugRepository[T]) FindBySlugs(ctx context.Context, slugs []string) ([]T, error) {
	items := make([]T, 0, len(slugs))
	if len(slugs) == 0 {
		return items, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Select(slugColumns...).
		From(r.table).
		Where(sq.Eq{"slug": slugs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", r.fn("FindBySlugs")).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return r.collect(rows, items)
}

func (r *slugRepository[T]) collect(rows *sql.Rows, items []T) ([]T, error) {
	for rows.Next() {
		var e slugEntity
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, T(e))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return items, nil
}

func (r *slugRepository[T]) List(ctx context.Context, page models.PageRequest) (models.Page[T], error) {
	log := logger.FromContext(ctx)

	countQ, listQ := buildListSlugQueries(r.db.builder, r.table, page)
	total, err := r.db.count(ctx, countQ)
	if err != nil {
		log.Err(err).Str("func", r.fn("List")).Msg("error counting rows")
		return models.Page[T]{}, err
	}

	query, args, err := listQ.ToSql()
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", r.fn("List")).Msg("error executing query")
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items, err := r.collect(rows, make([]T, 0))
	if err != nil {
		log.Err(err).Str("func", r.fn("List")).Msg("error scanning rows")
		return models.Page[T]{}, err
	}

	return models.Page[T]{Count: total, Results: items}, nil
}

// Delete removes the item with slug. Titles of a deleted category keep
// existing with no category; genre links are dropped.
func (r *slugRepository[T]) Delete(ctx context.Context, slug string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(r.table).Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", r.fn("Delete")).Msg("error deleting row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	ok, err := affectedOne(res)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
