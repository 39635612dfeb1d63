// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/models"
)

// titleRepository implements [TitleRepository]. A title row carries its
// category; genres live in the title_genres link table and the rating is
// computed from reviews on every read.
type titleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTitleRepository constructs a [TitleRepository] backed by db. Ratings
// are computed in the list and get queries, never stored.
func NewTitleRepository(db *DB, logger *logger.Logger) TitleRepository {
	logger.Debug().Msg("creating title repository")
	return &titleRepository{db: db, logger: logger}
}

// CreateTitle inserts the title and its genre links in one transaction.
// Unknown category or genre ids fail with [ErrNotFound].
func (r *titleRepository) CreateTitle(ctx context.Context, changes TitleChanges) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTitleQuery(r.db.builder, changes)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var titleID int64
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&titleID); err != nil {
			return r.db.classify(err, ErrExecutingQuery, nil)
		}
		if changes.GenreIDs != nil {
			return r.replaceGenres(ctx, tx, titleID, *changes.GenreIDs)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*titleRepository.CreateTitle").Msg("error creating title")
		return 0, err
	}

	return titleID, nil
}

// UpdateTitle applies the non-nil fields of changes. A non-nil GenreIDs
// replaces the whole genre set.
func (r *titleRepository) UpdateTitle(ctx context.Context, titleID int64, changes TitleChanges) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		set := titleSetMap(changes)
		if len(set) == 0 {
			if err := r.exists(ctx, tx, titleID); err != nil {
				return err
			}
		} else {
			query, args, err := buildUpdateContentQuery(r.db.builder, titlesTable, titleID, set)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return r.db.classify(err, ErrExecutingStatement, nil)
			}
			ok, err := affectedOne(res)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotFound
			}
		}

		if changes.GenreIDs != nil {
			return r.replaceGenres(ctx, tx, titleID, *changes.GenreIDs)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*titleRepository.UpdateTitle").Msg("error updating title")
		return err
	}
	return nil
}

func (r *titleRepository) exists(ctx context.Context, q querier, titleID int64) error {
	query, args, err := r.db.builder.Select("1").From(titlesTable).Where(sq.Eq{"id": titleID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *titleRepository) replaceGenres(ctx context.Context, q querier, titleID int64, genreIDs []int64) error {
	query, args, err := r.db.builder.Delete(titleGenresTable).Where(sq.Eq{"title_id": titleID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	query, args, err = buildInsertTitleGenresQuery(r.db.builder, titleID, genreIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return r.db.classify(err, ErrExecutingStatement, nil)
	}
	return nil
}

// titleScan holds the nullable columns of a title row.
type titleScan struct {
	title        models.Title
	description  sql.NullString
	categoryID   sql.NullInt64
	categoryName sql.NullString
	categorySlug sql.NullString
	rating       sql.NullInt64
}

func (s *titleScan) dest() []any {
	return []any{
		&s.title.ID, &s.title.Name, &s.title.Year, &s.description,
		&s.categoryID, &s.categoryName, &s.categorySlug, &s.rating,
	}
}

func (s *titleScan) result() models.Title {
	t := s.title
	t.Genres = make([]models.Genre, 0)
	if s.description.Valid {
		d := s.description.String
		t.Description = &d
	}
	if s.categoryID.Valid {
		t.Category = &models.Category{ID: s.categoryID.Int64, Name: s.categoryName.String, Slug: s.categorySlug.String}
	}
	if s.rating.Valid {
		rating := int(s.rating.Int64)
		t.Rating = &rating
	}
	return t
}

func (r *titleRepository) GetTitle(ctx context.Context, titleID int64) (models.Title, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTitleQuery(r.db.builder, r.db.ratingExpr, titleID)
	if err != nil {
		return models.Title{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s titleScan
	err = r.db.QueryRowContext(ctx, query, args...).Scan(s.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Title{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*titleRepository.GetTitle").Msg("error scanning title")
		return models.Title{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	titles := []models.Title{s.result()}
	if err = r.attachGenres(ctx, titles); err != nil {
		log.Err(err).Str("func", "*titleRepository.GetTitle").Msg("error loading genres")
		return models.Title{}, err
	}
	return titles[0], nil
}

func (r *titleRepository) ListTitles(ctx context.Context, filter models.TitleFilter, page models.PageRequest) (models.Page[models.Title], error) {
	log := logger.FromContext(ctx)

	countQ, listQ := buildListTitlesQueries(r.db.builder, r.db.ratingExpr, filter, page)
	total, err := r.db.count(ctx, countQ)
	if err != nil {
		log.Err(err).Str("func", "*titleRepository.ListTitles").Msg("error counting titles")
		return models.Page[models.Title]{}, err
	}

	query, args, err := listQ.ToSql()
	if err != nil {
		return models.Page[models.Title]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*titleRepository.ListTitles").Msg("error executing query")
		return models.Page[models.Title]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	titles := make([]models.Title, 0)
	for rows.Next() {
		var s titleScan
		if err = rows.Scan(s.dest()...); err != nil {
			rows.Close()
			return models.Page[models.Title]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		titles = append(titles, s.result())
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return models.Page[models.Title]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attachGenres(ctx, titles); err != nil {
		log.Err(err).Str("func", "*titleRepository.ListTitles").Msg("error loading genres")
		return models.Page[models.Title]{}, err
	}

	return models.Page[models.Title]{Count: total, Results: titles}, nil
}

// attachGenres loads the genres of titles with a single query.
func (r *titleRepository) attachGenres(ctx context.Context, titles []models.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]int64, len(titles))
	index := make(map[int64]int, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
		index[t.ID] = i
	}

	query, args, err := buildTitleGenresQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			titleID int64
			g       models.Genre
		)
		if err := rows.Scan(&titleID, &g.ID, &g.Name, &g.Slug); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[titleID]; ok {
			titles[i].Genres = append(titles[i].Genres, g)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// DeleteTitle removes the title; its genre links, reviews and comments go
// with it.
func (r *titleRepository) DeleteTitle(ctx context.Context, titleID int64) error {
	return deleteByID(ctx, r.db, "*titleRepository.DeleteTitle", titlesTable, titleID)
}
