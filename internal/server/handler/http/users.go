package http

import (
	"context"
	"net/http"

	"drivenpass/internal/models"
)

// UserService defines the identity operations required by the HTTP
// handlers.
type UserService interface {
	// Create registers a new user and returns its id and email.
	Create(ctx context.Context, email, password string) (models.User, error)
	// SignIn verifies the email/password pair and returns a bearer token.
	SignIn(ctx context.Context, email, password string) (string, error)
}

// UserHandler handles HTTP requests for signup and sign-in.
type UserHandler struct {
	// UserService performs the underlying identity operations.
	UserService UserService
}

// CreateUserRequest represents the JSON payload for user registration.
type CreateUserRequest struct {
	// Email is the sign-in address; must be a valid email shape.
	Email string `json:"email" validate:"required,email"`
	// Password must be at least 10 characters.
	Password string `json:"password" validate:"required,min=10"`
}

// SignInRequest represents the JSON payload for sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
}

// Register handles POST /users.
// A valid body creates the user and responds 201 with its id and email;
// a duplicate email responds 409. The password hash is never returned.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":    user.ID,
		"email": user.Email,
	})
}

// SignIn handles POST /auth/sign-in.
// Valid credentials respond 200 with a bearer token; an unknown email and
// a wrong password both respond 401.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.UserService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
