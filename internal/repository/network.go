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

// PostgresNetworkRepository implements network-secret persistence against
// PostgreSQL. Same access shape as PostgresCredentialRepository: every read
// except FindAnyByID is owner-scoped.
type PostgresNetworkRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresNetworkRepository creates a PostgresNetworkRepository with the
// given database connection.
func NewPostgresNetworkRepository(db *sql.DB) *PostgresNetworkRepository {
	return &PostgresNetworkRepository{DB: db}
}

// FindByID fetches the network secret with the given id owned by ownerID.
func (r *PostgresNetworkRepository) FindByID(ctx context.Context, id, ownerID string) (models.Network, bool, error) {
	var n models.Network
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, network, password, user_id FROM networks
		WHERE id = $1 AND user_id = $2
	`, id, ownerID).Scan(&n.ID, &n.Title, &n.Network, &n.Password, &n.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Network{}, false, nil
	}
	if err != nil {
		return models.Network{}, false, fmt.Errorf("FindByID: %w", err)
	}
	return n, true, nil
}

// FindByTitle fetches the network secret with the given title owned by
// ownerID. The match is exact.
func (r *PostgresNetworkRepository) FindByTitle(ctx context.Context, title, ownerID string) (models.Network, bool, error) {
	var n models.Network
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, network, password, user_id FROM networks
		WHERE title = $1 AND user_id = $2
	`, title, ownerID).Scan(&n.ID, &n.Title, &n.Network, &n.Password, &n.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Network{}, false, nil
	}
	if err != nil {
		return models.Network{}, false, fmt.Errorf("FindByTitle: %w", err)
	}
	return n, true, nil
}

// ListByOwner fetches all network secrets owned by ownerID.
func (r *PostgresNetworkRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Network, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, network, password, user_id FROM networks
		WHERE user_id = $1
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	var networks []models.Network
	for rows.Next() {
		var n models.Network
		if err := rows.Scan(&n.ID, &n.Title, &n.Network, &n.Password, &n.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		networks = append(networks, n)
	}
	return networks, rows.Err()
}

// FindAnyByID fetches the network secret with the given id regardless of
// owner. Used only by the delete path.
func (r *PostgresNetworkRepository) FindAnyByID(ctx context.Context, id string) (models.Network, bool, error) {
	var n models.Network
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, network, password, user_id FROM networks
		WHERE id = $1
	`, id).Scan(&n.ID, &n.Title, &n.Network, &n.Password, &n.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Network{}, false, nil
	}
	if err != nil {
		return models.Network{}, false, fmt.Errorf("FindAnyByID: %w", err)
	}
	return n, true, nil
}

// Create inserts the network secret with a generated id and returns the id.
// A per-owner title collision surfaces as common.ErrDuplicateTitle.
func (r *PostgresNetworkRepository) Create(ctx context.Context, n models.Network) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO networks (id, user_id, title, network, password)
		VALUES ($1, $2, $3, $4, $5)
	`, id, n.UserID, n.Title, n.Network, n.Password)
	if isUniqueViolation(err) {
		return "", common.ErrDuplicateTitle
	}
	if err != nil {
		return "", fmt.Errorf("create network: %w", err)
	}
	return id, nil
}

// Delete removes the network secret with the given id.
func (r *PostgresNetworkRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM networks WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete network: %w", err)
	}
	return nil
}
