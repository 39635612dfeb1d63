// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-yamdb/internal/logger"
	"github.com/MKhiriev/go-yamdb/models"
	"github.com/jackc/pgerrcode"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "john", Email: "john@example.com"}
	joined := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "john@example.com", "", "", "", "user", false).
		WillReturnRows(userRows().AddRow(1, "john", "john@example.com", "", "", "", "user", false, nil, joined))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Role != models.RoleUser {
		t.Errorf("expected default role user, got %s", created.Role)
	}
	if created.LastLogin != nil {
		t.Errorf("expected nil last login, got %v", created.LastLogin)
	}
	if !created.DateJoined.Equal(joined) {
		t.Errorf("expected date joined %v, got %v", joined, created.DateJoined)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"username taken", "users_username_key", ErrUsernameAlreadyExists},
		{"email taken", "users_email_key", ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	lastLogin := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	mock.ExpectQuery("SELECT id, username").
		WithArgs("john").
		WillReturnRows(userRows().AddRow(1, "john", "j@x.io", "John", "Doe", "bio", "moderator", true, lastLogin, lastLogin))

	found, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "john" || found.Role != models.RoleModerator || !found.IsSuperuser {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.LastLogin == nil || !found.LastLogin.Equal(lastLogin) {
		t.Errorf("expected last login %v, got %v", lastLogin, found.LastLogin)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username").
		WithArgs("john").
		WillReturnRows(userRows())

	_, err := repo.FindUserByUsername(context.Background(), "john")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username").
		WithArgs(int64(5)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(context.Background(), 5)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUsersByUsernameOrEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM users WHERE \(username = \$1 OR email = \$2\)`).
		WithArgs("john", "j@x.io").
		WillReturnRows(userRows().
			AddRow(1, "john", "other@x.io", "", "", "", "user", false, nil, now).
			AddRow(2, "jane", "j@x.io", "", "", "", "user", false, nil, now))

	users, err := repo.FindUsersByUsernameOrEmail(context.Background(), "john", "j@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestListUsers(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("%jo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT id, username.* ORDER BY id DESC LIMIT 2 OFFSET 2`).
		WithArgs("%jo%").
		WillReturnRows(userRows().AddRow(1, "john", "j@x.io", "", "", "", "user", false, nil, now))

	page, err := repo.ListUsers(context.Background(), models.PageRequest{Number: 2, Size: 2, Search: "Jo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Count != 3 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestUpdateUser_EmptyUpdateReadsUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username").
		WithArgs(int64(1)).
		WillReturnRows(userRows().AddRow(1, "john", "j@x.io", "", "", "", "user", false, nil, time.Now()))

	user, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "john" {
		t.Errorf("expected john, got %s", user.Username)
	}
}

func TestUpdateUser_Conflict(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	email := "taken@x.io"
	mock.ExpectQuery("UPDATE users SET email").
		WithArgs(email, int64(1)).
		WillReturnError(pgError(pgerrcode.UniqueViolation, "users_email_key"))

	_, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{Email: &email})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	bio := "x"
	mock.ExpectQuery("UPDATE users SET bio").
		WithArgs(bio, int64(9)).
		WillReturnRows(userRows())

	_, err := repo.UpdateUser(context.Background(), 9, models.UserUpdate{Bio: &bio})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	at := time.Date(2026, 5, 6, 7, 8, 9, 123456789, time.FixedZone("X", 3600))
	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(time.Date(2026, 5, 6, 6, 8, 9, 0, time.UTC), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLastLogin(context.Background(), 1, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteUser(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteUser(context.Background(), 2); !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
