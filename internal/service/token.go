package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"drivenpass/internal/common"
)

// SessionStore defines the persistence operations required by TokenService.
// A session is active while its row exists; deleting the row revokes the
// token.
type SessionStore interface {
	Create(ctx context.Context, token, userID string) error
	// FindUserID returns the user the token was issued to, with found=false
	// when no session row exists for it.
	FindUserID(ctx context.Context, token string) (string, bool, error)
	Delete(ctx context.Context, token string) error
}

// Claims is the signed payload of an issued token: the bound user id on
// top of the registered claim set. Tokens carry no expiry; revocation is
// the only way a session ends.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and resolves bearer tokens. A token is valid only if
// its signature verifies AND a session row still exists for it, so a
// deleted session invalidates an otherwise well-formed signed token.
type TokenService struct {
	store  SessionStore
	secret []byte
}

// NewTokenService constructs a TokenService signing with the given secret.
func NewTokenService(store SessionStore, secret []byte) *TokenService {
	return &TokenService{store: store, secret: secret}
}

// Issue signs a token bound to userID and persists the session record
// keyed by the raw token.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.store.Create(ctx, signed, userID); err != nil {
		return "", fmt.Errorf("persist session: %w", err)
	}
	return signed, nil
}

// Resolve returns the user id a token is bound to, or
// common.ErrUnauthenticated. Verification is two explicit parts: first the
// signature and claim shape, then the session row. Both are required.
func (s *TokenService) Resolve(ctx context.Context, tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", common.ErrUnauthenticated
	}

	userID, found, err := s.store.FindUserID(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if !found {
		// Structurally valid signed token whose session was revoked.
		return "", common.ErrUnauthenticated
	}
	return userID, nil
}
