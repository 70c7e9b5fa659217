package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"drivenpass/internal/middleware"
	"drivenpass/internal/models"
)

// NetworkService defines the secret-resource operations required by the
// network handlers. Implemented by service.SecretService[models.Network].
type NetworkService interface {
	Create(ctx context.Context, ownerID string, n models.Network) (string, error)
	Get(ctx context.Context, id, ownerID string) (models.Network, error)
	List(ctx context.Context, ownerID string) ([]models.Network, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// NetworkHandler handles HTTP requests for stored Wi-Fi secrets.
type NetworkHandler struct {
	NetworkService NetworkService
}

// CreateNetworkRequest represents the JSON payload for creating a network
// secret. All fields are required.
type CreateNetworkRequest struct {
	Title    string `json:"title" validate:"required"`
	Network  string `json:"network" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Create handles POST /network. Responds 201 with the new id only.
func (h *NetworkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req CreateNetworkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.NetworkService.Create(r.Context(), userID, models.Network{
		Title:    req.Title,
		Network:  req.Network,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /network/{id}.
func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	network, err := h.NetworkService.Get(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, network)
}

// List handles GET /network.
func (h *NetworkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	networks, err := h.NetworkService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, networks)
}

// Delete handles DELETE /network/{id}.
func (h *NetworkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.NetworkService.Delete(r.Context(), id, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
