package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresSessionRepository implements session persistence against
// PostgreSQL. A session row is the active/revoked switch for its token:
// core logic only ever creates and reads rows, deletion is how a token
// gets revoked.
type PostgresSessionRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSessionRepository creates a PostgresSessionRepository with the
// given database connection.
func NewPostgresSessionRepository(db *sql.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{DB: db}
}

// Create persists a session row binding token to userID.
func (r *PostgresSessionRepository) Create(ctx context.Context, token, userID string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id) VALUES ($1, $2)
	`, token, userID)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// FindUserID returns the user id bound to token. The second return value is
// false when no session row exists for it.
func (r *PostgresSessionRepository) FindUserID(ctx context.Context, token string) (string, bool, error) {
	var userID string
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id FROM sessions WHERE token = $1
	`, token).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("FindUserID: %w", err)
	}
	return userID, true, nil
}

// Delete removes the session row for token, revoking it.
func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM sessions WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
