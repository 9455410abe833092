// Package session mints the bearer tokens the rest of the API requires.
// There is no user database; the dashboard is self-hosted and an owner id
// plus the shared signing secret is the whole identity model.
package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/auth"
)

type Handler struct {
	auth *auth.Authenticator
}

func NewHandler(a *auth.Authenticator) *Handler {
	return &Handler{auth: a}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/token", h.token)
}

type tokenRequest struct {
	// OwnerID is optional; a fresh id is generated on first run.
	OwnerID string `json:"owner_id,omitempty"`
}

type tokenResponse struct {
	Token   string    `json:"token"`
	OwnerID uuid.UUID `json:"owner_id"`
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ownerID := uuid.New()

	if req.OwnerID != "" {
		parsed, err := uuid.Parse(req.OwnerID)
		if err != nil {
			http.Error(w, "invalid owner id", http.StatusBadRequest)
			return
		}

		ownerID = parsed
	}

	token, err := h.auth.Issue(ownerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(tokenResponse{Token: token, OwnerID: ownerID}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
