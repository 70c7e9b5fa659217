package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"drivenpass/internal/common"
)

func setupUserMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestUserFindByEmail_Found(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow("u1", "a@x.com", "$2a$12$hash"))

	user, found, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected user to be found")
	}
	if user.ID != "u1" || user.Email != "a@x.com" || user.PasswordHash != "$2a$12$hash" {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserFindByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password FROM users WHERE email = $1`)).
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}))

	_, found, err := repo.FindByEmail(context.Background(), "missing@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected user to not be found")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserFindByEmail_Error(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password FROM users WHERE email = $1`)).
		WithArgs("a@x.com").
		WillReturnError(errors.New("query failed"))

	_, _, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestUserCreate_Success(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, password) VALUES ($1, $2, $3)`)).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user, err := repo.Create(context.Background(), "a@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated id")
	}
	if user.Email != "a@x.com" {
		t.Errorf("email = %q; want %q", user.Email, "a@x.com")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, email, password) VALUES ($1, $2, $3)`)).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), "a@x.com", "hash")
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Errorf("error = %v; want ErrDuplicateEmail", err)
	}
}
