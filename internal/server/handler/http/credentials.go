package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"drivenpass/internal/middleware"
	"drivenpass/internal/models"
)

// CredentialService defines the secret-resource operations required by the
// credential handlers. Implemented by service.SecretService[models.Credential].
type CredentialService interface {
	Create(ctx context.Context, ownerID string, c models.Credential) (string, error)
	Get(ctx context.Context, id, ownerID string) (models.Credential, error)
	List(ctx context.Context, ownerID string) ([]models.Credential, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// CredentialHandler handles HTTP requests for stored site logins.
type CredentialHandler struct {
	CredentialService CredentialService
}

// CreateCredentialRequest represents the JSON payload for creating a
// credential. All fields are required.
type CreateCredentialRequest struct {
	Title    string `json:"title" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Create handles POST /credentials. Responds 201 with the new id only;
// the secret is never echoed back. A duplicate title responds 409.
func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req CreateCredentialRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.CredentialService.Create(r.Context(), userID, models.Credential{
		Title:    req.Title,
		URL:      req.URL,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /credentials/{id}. Responds 200 with the full row,
// password decrypted; another owner's credential responds 404.
func (h *CredentialHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	credential, err := h.CredentialService.Get(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, credential)
}

// List handles GET /credentials. Responds 200 with every credential of the
// caller, passwords decrypted; an owner with none responds 404.
func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	credentials, err := h.CredentialService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, credentials)
}

// Delete handles DELETE /credentials/{id}. Responds 200 with no body;
// a missing credential responds 404, someone else's responds 401.
func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.CredentialService.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
