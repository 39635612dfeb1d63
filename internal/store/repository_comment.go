// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
//
// Parameters:
//
//	db     - open connection; its dialect decides the placeholder format
//	logger - base logger, used for the construction message only
//
// Returns:
//
//	CommentRepository - repository safe for concurrent use
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{db: db, logger: logger}
}

// CreateComment inserts comment under its review. An unknown review fails
// with [ErrNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Insert(commentsTable).
		Columns("review_id", "author_id", "text").
		Values(comment.ReviewID, comment.AuthorID, comment.Text).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var commentID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&commentID); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error inserting comment")
		return models.Comment{}, r.db.classify(err, ErrExecutingQuery, nil)
	}

	return r.GetComment(ctx, comment.ReviewID, commentID)
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.ReviewID, &c.Text, &c.PubDate, &c.AuthorID, &c.Author)
	return c, err
}

// GetComment returns the comment only when it belongs to reviewID.
func (r *commentRepository) GetComment(ctx context.Context, reviewID, commentID int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCommentQuery(r.db.builder, reviewID, commentID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.GetComment").Msg("error scanning comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return comment, nil
}

func (r *commentRepository) ListComments(ctx context.Context, reviewID int64, page models.PageRequest) (models.Page[models.Comment], error) {
	log := logger.FromContext(ctx)

	countQ, listQ := buildListCommentsQueries(r.db.builder, reviewID, page)
	total, err := r.db.count(ctx, countQ)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error counting comments")
		return models.Page[models.Comment]{}, err
	}

	query, args, err := listQ.ToSql()
	if err != nil {
		return models.Page[models.Comment]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error executing query")
		return models.Page[models.Comment]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return models.Page[models.Comment]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return models.Page[models.Comment]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.Page[models.Comment]{Count: total, Results: comments}, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, commentID int64, input models.CommentInput) error {
	set := map[string]any{}
	if input.Text != nil {
		set["text"] = *input.Text
	}
	return updateContent(ctx, r.db, "*commentRepository.UpdateComment", commentsTable, commentID, set)
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	return deleteByID(ctx, r.db, "*commentRepository.DeleteComment", commentsTable, commentID)
}
