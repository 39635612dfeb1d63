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

type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the
// provided database connection and logger.
//
// A write that hits the (title, author) unique constraint fails with
// [ErrReviewAlreadyExists].
//
// Parameters:
//
//	db     - open connection
//	logger - base logger
//
// Returns:
//
//	ReviewRepository - repository safe for concurrent use
//
// Example usage:
//
//	reviews := store.NewReviewRepository(db, log)
//	review, err := reviews.GetReview(ctx, titleID, reviewID)
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{db: db, logger: logger}
}

// CreateReview inserts review and returns it as the listing would render
// it. A second review of the same title by the same author fails with
// [ErrReviewAlreadyExists]; an unknown title fails with [ErrNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Insert(reviewsTable).
		Columns("title_id", "author_id", "text", "score").
		Values(review.TitleID, review.AuthorID, review.Text, review.Score).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reviewID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&reviewID); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error inserting review")
		return models.Review{}, r.db.classify(err, ErrExecutingQuery, func(string) error {
			return ErrReviewAlreadyExists
		})
	}

	return r.GetReview(ctx, review.TitleID, reviewID)
}

func scanReview(row rowScanner) (models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.TitleID, &rv.Text, &rv.Score, &rv.PubDate, &rv.AuthorID, &rv.Author)
	return rv, err
}

// GetReview returns the review only when it belongs to titleID.
func (r *reviewRepository) GetReview(ctx context.Context, titleID, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetReviewQuery(r.db.builder, titleID, reviewID)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	review, err := scanReview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReview").Msg("error scanning review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return review, nil
}

func (r *reviewRepository) ListReviews(ctx context.Context, titleID int64, page models.PageRequest) (models.Page[models.Review], error) {
	log := logger.FromContext(ctx)

	countQ, listQ := buildListReviewsQueries(r.db.builder, titleID, page)
	total, err := r.db.count(ctx, countQ)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error counting reviews")
		return models.Page[models.Review]{}, err
	}

	query, args, err := listQ.ToSql()
	if err != nil {
		return models.Page[models.Review]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error executing query")
		return models.Page[models.Review]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return models.Page[models.Review]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reviews = append(reviews, review)
	}
	if err = rows.Err(); err != nil {
		return models.Page[models.Review]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.Page[models.Review]{Count: total, Results: reviews}, nil
}

// UpdateReview applies the non-nil fields of input. Author, title and
// publication date never change.
func (r *reviewRepository) UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) error {
	set := map[string]any{}
	if input.Text != nil {
		set["text"] = *input.Text
	}
	if input.Score != nil {
		set["score"] = *input.Score
	}
	return updateContent(ctx, r.db, "*reviewRepository.UpdateReview", reviewsTable, reviewID, set)
}

func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	return deleteByID(ctx, r.db, "*reviewRepository.DeleteReview", reviewsTable, reviewID)
}

// updateContent runs a partial update of one row. An empty set only checks
// that the row exists.
func updateContent(ctx context.Context, db *DB, fn, table string, id int64, set map[string]any) error {
	log := logger.FromContext(ctx)

	var (
		query string
		args  []any
		err   error
	)
	if len(set) == 0 {
		query, args, err = db.builder.Select("1").From(table).Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var one int
		err = db.QueryRowContext(ctx, query, args...).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			log.Err(err).Str("func", fn).Msg("error checking row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	}

	query, args, err = buildUpdateContentQuery(db.builder, table, id, set)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error updating row")
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

func deleteByID(ctx context.Context, db *DB, fn, table string, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := db.builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error deleting row")
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
