// Package service provides the business logic of the vault: user identity,
// token issuing and resolution, and the secret-resource operations.
// Persistence is delegated to repository interfaces declared here.
package service

import (
	"context"

	"drivenpass/internal/common"
)

// Record is the contract a secret resource kind must satisfy to be served
// by SecretService. Credentials and networks both implement it; only their
// non-secret field sets differ.
type Record[R any] interface {
	RecordID() string
	RecordTitle() string
	RecordOwner() string
	Secret() string
	// WithSecret returns a copy with the secret field replaced.
	WithSecret(string) R
	// WithOwner returns a copy bound to the given owner.
	WithOwner(string) R
}

// SecretStore defines the persistence operations required by SecretService
// for one resource kind. The ByID/ByTitle/ByOwner reads are owner-scoped:
// a row belonging to another user is indistinguishable from an absent one.
// FindAnyByID is the single deliberate exception, used by Delete to tell
// "does not exist" apart from "exists but is not yours".
type SecretStore[R any] interface {
	FindByID(ctx context.Context, id, ownerID string) (R, bool, error)
	FindByTitle(ctx context.Context, title, ownerID string) (R, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]R, error)
	FindAnyByID(ctx context.Context, id string) (R, bool, error)
	// Create persists the record and returns its new identifier.
	// A per-owner title collision surfaces as common.ErrDuplicateTitle.
	Create(ctx context.Context, record R) (string, error)
	Delete(ctx context.Context, id string) error
}

// Cipher transforms a single secret string between plaintext and
// ciphertext. Implemented by drivenpass/internal/cipher.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SecretService implements the owner-scoped lifecycle of one secret
// resource kind. It is instantiated twice, for credentials and networks,
// with identical contracts.
type SecretService[R Record[R]] struct {
	store  SecretStore[R]
	cipher Cipher
}

// NewSecretService constructs a SecretService over the given store and
// cipher. The cipher is injected here rather than held globally; it is the
// only path through which secret fields are read or written.
func NewSecretService[R Record[R]](store SecretStore[R], cipher Cipher) *SecretService[R] {
	return &SecretService[R]{store: store, cipher: cipher}
}

// Create stores a new record for ownerID and returns its identifier.
// A record with the same title already owned by ownerID fails with
// common.ErrDuplicateTitle and writes nothing. The title match is exact:
// case- and whitespace-sensitive, scoped to this owner only. The secret
// field is encrypted before it reaches the store; the plaintext is never
// echoed back.
func (s *SecretService[R]) Create(ctx context.Context, ownerID string, record R) (string, error) {
	_, taken, err := s.store.FindByTitle(ctx, record.RecordTitle(), ownerID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", common.ErrDuplicateTitle
	}

	encrypted, err := s.cipher.Encrypt(record.Secret())
	if err != nil {
		return "", err
	}

	// The store's unique constraint closes the race between the title
	// check above and this insert.
	return s.store.Create(ctx, record.WithOwner(ownerID).WithSecret(encrypted))
}

// Get returns the record with the given id if it belongs to ownerID.
// The fetch predicate itself enforces ownership, so another user's record
// fails with common.ErrNotFound exactly like a nonexistent one. The secret
// field is decrypted fresh on every read.
func (s *SecretService[R]) Get(ctx context.Context, id, ownerID string) (R, error) {
	record, found, err := s.store.FindByID(ctx, id, ownerID)
	if err != nil {
		var zero R
		return zero, err
	}
	if !found {
		var zero R
		return zero, common.ErrNotFound
	}

	plain, err := s.cipher.Decrypt(record.Secret())
	if err != nil {
		var zero R
		return zero, err
	}
	return record.WithSecret(plain), nil
}

// List returns every record owned by ownerID with secret fields decrypted.
// An owner with zero records fails with common.ErrNotFound.
func (s *SecretService[R]) List(ctx context.Context, ownerID string) ([]R, error) {
	records, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, common.ErrNotFound
	}

	out := make([]R, 0, len(records))
	for _, record := range records {
		plain, err := s.cipher.Decrypt(record.Secret())
		if err != nil {
			return nil, err
		}
		out = append(out, record.WithSecret(plain))
	}
	return out, nil
}

// Delete removes the record with the given id. The fetch is by id alone;
// an absent record fails with common.ErrNotFound, and a record owned by
// someone else fails with common.ErrUnauthorized before anything is
// deleted. The two steps are deliberate: the service layer distinguishes
// "does not exist" from "exists but is not yours".
func (s *SecretService[R]) Delete(ctx context.Context, id, ownerID string) error {
	record, found, err := s.store.FindAnyByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return common.ErrNotFound
	}
	if record.RecordOwner() != ownerID {
		return common.ErrUnauthorized
	}
	return s.store.Delete(ctx, id)
}
