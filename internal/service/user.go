package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"drivenpass/internal/common"
	"drivenpass/internal/models"
)

// bcryptCost is the fixed work factor applied to every stored password.
const bcryptCost = 12

// UserRepository defines the persistence operations required by UserService.
type UserRepository interface {
	// FindByEmail returns the user registered under email, with found=false
	// when no such user exists.
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	// Create persists a new user with the given email and password hash and
	// returns the stored record. A duplicate email surfaces as
	// common.ErrDuplicateEmail.
	Create(ctx context.Context, email, passwordHash string) (models.User, error)
}

// TokenIssuer mints a bearer token bound to a user id.
// Implemented by TokenService.
type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
}

// UserService handles signup and sign-in.
type UserService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewUserService constructs a UserService over the given repository and
// token issuer.
func NewUserService(repo UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Create registers a new user. An email already in use fails with
// common.ErrDuplicateEmail. The password is stored only as a bcrypt hash;
// the returned user carries id and email, never the hash.
func (s *UserService) Create(ctx context.Context, email, password string) (models.User, error) {
	_, taken, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, common.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: user.ID, Email: user.Email}, nil
}

// SignIn verifies the email/password pair and issues a token. An unknown
// email and a wrong password both fail with common.ErrUnauthenticated,
// indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !found {
		return "", common.ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrUnauthenticated
	}

	return s.tokens.Issue(ctx, user.ID)
}
