package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupSessionMock(t *testing.T) (*PostgresSessionRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresSessionRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestSessionCreate_Success(t *testing.T) {
	repo, mock, cleanup := setupSessionMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO sessions (token, user_id) VALUES ($1, $2)`)).
		WithArgs("tok", "u1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), "tok", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestSessionFindUserID_Found(t *testing.T) {
	repo, mock, cleanup := setupSessionMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM sessions WHERE token = $1`)).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1"))

	userID, found, err := repo.FindUserID(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected session to be found")
	}
	if userID != "u1" {
		t.Errorf("userID = %q; want %q", userID, "u1")
	}
}

func TestSessionFindUserID_Revoked(t *testing.T) {
	repo, mock, cleanup := setupSessionMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM sessions WHERE token = $1`)).
		WithArgs("tok").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, found, err := repo.FindUserID(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected no session for a revoked token")
	}
}

func TestSessionFindUserID_Error(t *testing.T) {
	repo, mock, cleanup := setupSessionMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT user_id FROM sessions WHERE token = $1`)).
		WithArgs("tok").
		WillReturnError(errors.New("query failed"))

	_, _, err := repo.FindUserID(context.Background(), "tok")
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestSessionDelete_Success(t *testing.T) {
	repo, mock, cleanup := setupSessionMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE token = $1`)).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
