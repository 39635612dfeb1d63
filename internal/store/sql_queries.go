// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-yamdb/models"
)

const (
	usersTable       = "users"
	categoriesTable  = "categories"
	genresTable      = "genres"
	titlesTable      = "titles"
	titleGenresTable = "title_genres"
	reviewsTable     = "reviews"
	commentsTable    = "comments"
)

var userColumns = []string{
	"id", "username", "email", "first_name", "last_name", "bio",
	"role", "is_superuser", "last_login", "date_joined",
}

var slugColumns = []string{"id", "name", "slug"}

// likePattern builds a case-insensitive substring pattern for LIKE ... ESCAPE '\'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func containsFold(column, search string) sq.Sqlizer {
	return sq.Expr("LOWER("+column+") LIKE ? ESCAPE '\\'", likePattern(search))
}

func paginate(q sq.SelectBuilder, page models.PageRequest) sq.SelectBuilder {
	if page.Size <= 0 {
		return q
	}
	return q.Limit(uint64(page.Size)).Offset(uint64(page.Offset()))
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "first_name", "last_name", "bio", "role", "is_superuser").
		Values(u.Username, u.Email, u.FirstName, u.LastName, u.Bio, string(u.Role), u.IsSuperuser).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(userColumns...).From(usersTable).Where(where).OrderBy("id DESC").ToSql()
}

func buildListUsersQueries(b sq.StatementBuilderType, page models.PageRequest) (sq.SelectBuilder, sq.SelectBuilder) {
	base := b.Select().From(usersTable)
	if page.Search != "" {
		base = base.Where(containsFold("username", page.Search))
	}
	return base.Columns("COUNT(*)"),
		paginate(base.Columns(userColumns...).OrderBy("id DESC"), page)
}

func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, u models.UserUpdate) (string, []any, error) {
	set := map[string]any{}
	if u.Username != nil {
		set["username"] = *u.Username
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.FirstName != nil {
		set["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		set["last_name"] = *u.LastName
	}
	if u.Bio != nil {
		set["bio"] = *u.Bio
	}
	if u.Role != nil {
		set["role"] = string(*u.Role)
	}

	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// ── categories and genres ────────────────────────────────────────────────────

func buildInsertSlugQuery(b sq.StatementBuilderType, table, name, slug string) (string, []any, error) {
	return b.Insert(table).Columns("name", "slug").Values(name, slug).Suffix("RETURNING id").ToSql()
}

func buildListSlugQueries(b sq.StatementBuilderType, table string, page models.PageRequest) (sq.SelectBuilder, sq.SelectBuilder) {
	base := b.Select().From(table)
	if page.Search != "" {
		base = base.Where(containsFold("name", page.Search))
	}
	return base.Columns("COUNT(*)"),
		paginate(base.Columns(slugColumns...).OrderBy("id DESC"), page)
}

// ── titles ───────────────────────────────────────────────────────────────────

func titleColumns(ratingExpr string) []string {
	return []string{
		"t.id", "t.name", "t.year", "t.description",
		"c.id", "c.name", "c.slug",
		"(SELECT " + ratingExpr + " FROM reviews r WHERE r.title_id = t.id) AS rating",
	}
}

func titleBase(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select().From("titles t").LeftJoin("categories c ON c.id = t.category_id")
}

func titleFilterPredicate(f models.TitleFilter) sq.And {
	where := sq.And{}
	if f.Category != "" {
		where = append(where, sq.Eq{"c.slug": f.Category})
	}
	if f.Genre != "" {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM title_genres tg JOIN genres g ON g.id = tg.genre_id WHERE tg.title_id = t.id AND g.slug = ?)",
			f.Genre,
		))
	}
	if f.Name != "" {
		where = append(where, containsFold("t.name", f.Name))
	}
	if f.Year != 0 {
		where = append(where, sq.Eq{"t.year": f.Year})
	}
	return where
}

func buildListTitlesQueries(b sq.StatementBuilderType, ratingExpr string, f models.TitleFilter, page models.PageRequest) (sq.SelectBuilder, sq.SelectBuilder) {
	base := titleBase(b)
	if where := titleFilterPredicate(f); len(where) > 0 {
		base = base.Where(where)
	}
	return base.Columns("COUNT(*)"),
		paginate(base.Columns(titleColumns(ratingExpr)...).OrderBy("t.id DESC"), page)
}

func buildGetTitleQuery(b sq.StatementBuilderType, ratingExpr string, titleID int64) (string, []any, error) {
	return titleBase(b).Columns(titleColumns(ratingExpr)...).Where(sq.Eq{"t.id": titleID}).ToSql()
}

func buildTitleGenresQuery(b sq.StatementBuilderType, titleIDs []int64) (string, []any, error) {
	return b.Select("tg.title_id", "g.id", "g.name", "g.slug").
		From("title_genres tg").
		Join("genres g ON g.id = tg.genre_id").
		Where(sq.Eq{"tg.title_id": titleIDs}).
		OrderBy("g.id").
		ToSql()
}

func buildInsertTitleQuery(b sq.StatementBuilderType, c TitleChanges) (string, []any, error) {
	return b.Insert(titlesTable).
		Columns("name", "year", "description", "category_id").
		Values(c.Name, c.Year, c.Description, c.CategoryID).
		Suffix("RETURNING id").
		ToSql()
}

// titleSetMap returns the column updates of c; empty when only genres change.
func titleSetMap(c TitleChanges) map[string]any {
	set := map[string]any{}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Year != nil {
		set["year"] = *c.Year
	}
	if c.Description != nil {
		set["description"] = *c.Description
	}
	if c.CategoryID != nil {
		set["category_id"] = *c.CategoryID
	}
	return set
}

func buildInsertTitleGenresQuery(b sq.StatementBuilderType, titleID int64, genreIDs []int64) (string, []any, error) {
	q := b.Insert(titleGenresTable).Columns("title_id", "genre_id")
	for _, genreID := range genreIDs {
		q = q.Values(titleID, genreID)
	}
	return q.ToSql()
}

// ── reviews and comments ─────────────────────────────────────────────────────

var reviewColumns = []string{"r.id", "r.title_id", "r.text", "r.score", "r.pub_date", "r.author_id", "u.username"}

func reviewBase(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select().From("reviews r").Join("users u ON u.id = r.author_id")
}

func buildListReviewsQueries(b sq.StatementBuilderType, titleID int64, page models.PageRequest) (sq.SelectBuilder, sq.SelectBuilder) {
	base := reviewBase(b).Where(sq.Eq{"r.title_id": titleID})
	return base.Columns("COUNT(*)"),
		paginate(base.Columns(reviewColumns...).OrderBy("r.id DESC"), page)
}

func buildGetReviewQuery(b sq.StatementBuilderType, titleID, reviewID int64) (string, []any, error) {
	return reviewBase(b).Columns(reviewColumns...).
		Where(sq.Eq{"r.title_id": titleID, "r.id": reviewID}).
		ToSql()
}

func buildUpdateContentQuery(b sq.StatementBuilderType, table string, id int64, set map[string]any) (string, []any, error) {
	return b.Update(table).SetMap(set).Where(sq.Eq{"id": id}).ToSql()
}

var commentColumns = []string{"cm.id", "cm.review_id", "cm.text", "cm.pub_date", "cm.author_id", "u.username"}

func commentBase(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select().From("comments cm").Join("users u ON u.id = cm.author_id")
}

func buildListCommentsQueries(b sq.StatementBuilderType, reviewID int64, page models.PageRequest) (sq.SelectBuilder, sq.SelectBuilder) {
	base := commentBase(b).Where(sq.Eq{"cm.review_id": reviewID})
	return base.Columns("COUNT(*)"),
		paginate(base.Columns(commentColumns...).OrderBy("cm.id DESC"), page)
}

func buildGetCommentQuery(b sq.StatementBuilderType, reviewID, commentID int64) (string, []any, error) {
	return commentBase(b).Columns(commentColumns...).
		Where(sq.Eq{"cm.review_id": reviewID, "cm.id": commentID}).
		ToSql()
}
