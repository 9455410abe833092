package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/auth"
	"github.com/jmcardenas/centavo/internal/importer"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/matching"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
	matchSvc  *matching.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service, matchSvc *matching.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledgerSvc: ledgerSvc,
		matchSvc:  matchSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/preview", h.preview)
	r.Post("/mappings", h.createMapping)
}

type entryDTO struct {
	Type        ledger.Type `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

type entryResponse struct {
	ID uuid.UUID `json:"id"`
	entryDTO
}

type importResponse struct {
	Imported     int             `json:"imported"`
	Skipped      int             `json:"skipped"`
	Transactions []entryResponse `json:"transactions"`
}

type previewResponse struct {
	Rows []entryDTO `json:"rows"`
}

// parseUpload reads the multipart form and runs the statement parser.
func (h *Handler) parseUpload(w http.ResponseWriter, r *http.Request) ([]ledger.AppendParams, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceCartola
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return params, true
}

// applyCategorySuggestions replaces parser-default categories with whatever
// the owner's stored patterns suggest. Lookup failures leave the row as-is.
func (h *Handler) applyCategorySuggestions(r *http.Request, ownerID uuid.UUID, params []ledger.AppendParams) {
	for i, p := range params {
		// Rows that already carry a real category (a backup re-import) keep it.
		if p.Category != "Otros" {
			continue
		}

		suggested, err := h.matchSvc.Suggest(r.Context(), ownerID, p.Description)
		if err != nil || suggested == "" {
			continue
		}

		params[i].Category = suggested
	}
}

// preview parses the statement and returns the rows without persisting
// anything, so the dashboard can show what an import would create.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	params, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	h.applyCategorySuggestions(r, ownerID, params)

	resp := previewResponse{Rows: make([]entryDTO, 0, len(params))}
	for _, p := range params {
		resp.Rows = append(resp.Rows, toDTO(p))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	params, ok := h.parseUpload(w, r)
	if !ok {
		return
	}

	h.applyCategorySuggestions(r, ownerID, params)

	resp := importResponse{Transactions: make([]entryResponse, 0, len(params))}

	for _, p := range params {
		tx, err := h.ledgerSvc.Append(r.Context(), ownerID, p)
		if err != nil {
			// Rows the parser accepted but the ledger rejects are counted,
			// not fatal; statements routinely mix fine rows with bad ones.
			if errors.Is(err, ledger.ErrValidation) {
				resp.Skipped++
				continue
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}

		resp.Imported++
		resp.Transactions = append(resp.Transactions, entryResponse{
			ID:       tx.ID,
			entryDTO: toDTO(p),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type mappingRequest struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
}

// createMapping teaches the matcher a new pattern so the next import
// categorizes matching rows automatically.
func (h *Handler) createMapping(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req mappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.matchSvc.Learn(r.Context(), ownerID, req.Pattern, req.Category); err != nil {
		if errors.Is(err, matching.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func toDTO(p ledger.AppendParams) entryDTO {
	return entryDTO{
		Type:        p.Type,
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
	}
}
