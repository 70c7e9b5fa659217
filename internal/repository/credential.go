package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"drivenpass/internal/common"
	"drivenpass/internal/models"
)

// PostgresCredentialRepository implements credential persistence against
// PostgreSQL. All reads except FindAnyByID are owner-scoped: the filter
// predicate includes the caller's user id, so another owner's row is
// indistinguishable from an absent one.
type PostgresCredentialRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCredentialRepository creates a PostgresCredentialRepository
// with the given database connection.
func NewPostgresCredentialRepository(db *sql.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{DB: db}
}

// FindByID fetches the credential with the given id owned by ownerID.
func (r *PostgresCredentialRepository) FindByID(ctx context.Context, id, ownerID string) (models.Credential, bool, error) {
	var c models.Credential
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, url, username, password, user_id FROM credentials
		WHERE id = $1 AND user_id = $2
	`, id, ownerID).Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("FindByID: %w", err)
	}
	return c, true, nil
}

// FindByTitle fetches the credential with the given title owned by ownerID.
// The match is exact; the same title under a different owner is not a hit.
func (r *PostgresCredentialRepository) FindByTitle(ctx context.Context, title, ownerID string) (models.Credential, bool, error) {
	var c models.Credential
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, url, username, password, user_id FROM credentials
		WHERE title = $1 AND user_id = $2
	`, title, ownerID).Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("FindByTitle: %w", err)
	}
	return c, true, nil
}

// ListByOwner fetches all credentials owned by ownerID.
func (r *PostgresCredentialRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Credential, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, url, username, password, user_id FROM credentials
		WHERE user_id = $1
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	var credentials []models.Credential
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		credentials = append(credentials, c)
	}
	return credentials, rows.Err()
}

// FindAnyByID fetches the credential with the given id regardless of owner.
// Only the delete path uses this, to distinguish a missing row from a row
// owned by someone else.
func (r *PostgresCredentialRepository) FindAnyByID(ctx context.Context, id string) (models.Credential, bool, error) {
	var c models.Credential
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, url, username, password, user_id FROM credentials
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Title, &c.URL, &c.Username, &c.Password, &c.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, false, nil
	}
	if err != nil {
		return models.Credential{}, false, fmt.Errorf("FindAnyByID: %w", err)
	}
	return c, true, nil
}

// Create inserts the credential with a generated id and returns the id.
// A per-owner title collision hits UNIQUE(user_id, title) and surfaces as
// common.ErrDuplicateTitle.
func (r *PostgresCredentialRepository) Create(ctx context.Context, c models.Credential) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO credentials (id, user_id, title, url, username, password)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, c.UserID, c.Title, c.URL, c.Username, c.Password)
	if isUniqueViolation(err) {
		return "", common.ErrDuplicateTitle
	}
	if err != nil {
		return "", fmt.Errorf("create credential: %w", err)
	}
	return id, nil
}

// Delete removes the credential with the given id.
func (r *PostgresCredentialRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM credentials WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
