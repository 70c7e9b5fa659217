// Package repository provides PostgreSQL persistence for users, sessions,
// and the two secret resource kinds.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"drivenpass/internal/common"
	"drivenpass/internal/models"
)

// uniqueViolation is the Postgres error code raised when an insert hits a
// unique constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// PostgresUserRepository implements user persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a PostgresUserRepository with the given
// database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindByEmail fetches the user registered under email. The second return
// value is false when no such user exists.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, email, password FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("FindByEmail: %w", err)
	}
	return user, true, nil
}

// Create inserts a new user with a generated id and returns the stored
// record. A concurrent signup with the same email surfaces as
// common.ErrDuplicateEmail via the unique constraint.
func (r *PostgresUserRepository) Create(ctx context.Context, email, passwordHash string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, password) VALUES ($1, $2, $3)
	`, id, email, passwordHash)
	if isUniqueViolation(err) {
		return models.User{}, common.ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return models.User{ID: id, Email: email, PasswordHash: passwordHash}, nil
}
