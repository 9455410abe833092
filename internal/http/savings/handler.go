package savings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/auth"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/posting"
	"github.com/jmcardenas/centavo/internal/savings"
)

type Handler struct {
	svc     *savings.Service
	posting *posting.Service
}

func NewHandler(svc *savings.Service, postingSvc *posting.Service) *Handler {
	return &Handler{svc: svc, posting: postingSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.total)
	r.Post("/deposit", h.deposit)
	r.Post("/withdraw", h.withdraw)
}

type totalResponse struct {
	Total int64 `json:"total"`
}

func (h *Handler) total(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	total, err := h.svc.Total(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totalResponse{Total: total}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type movementRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
}

type entryResponse struct {
	ID          uuid.UUID   `json:"id"`
	Type        ledger.Type `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

type movementResponse struct {
	Total   int64          `json:"total"`
	Entry   *entryResponse `json:"entry,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.posting.DepositFreeSavings(r.Context(), ownerID, req.Amount)
	h.writeMovement(w, result, err)
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.posting.WithdrawFreeSavings(r.Context(), ownerID, req.Amount, req.Description)
	h.writeMovement(w, result, err)
}

func (h *Handler) writeMovement(w http.ResponseWriter, result *posting.PoolMovement, err error) {
	var partial *posting.PartialError

	switch {
	case errors.As(err, &partial):
		slog.Warn("companion entry failed", "action", partial.Action, "error", partial.Err)
	case errors.Is(err, savings.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, savings.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := movementResponse{Total: result.Pool.Total}

	if result.Entry != nil {
		resp.Entry = &entryResponse{
			ID:          result.Entry.ID,
			Type:        result.Entry.Type,
			Amount:      result.Entry.Amount,
			Category:    result.Entry.Category,
			Description: result.Entry.Description,
			Date:        result.Entry.Date,
		}
	}

	if partial != nil {
		resp.Warning = partial.Error()
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
