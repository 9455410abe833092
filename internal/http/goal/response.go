package goal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/goal"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/posting"
)

type goalResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  int64       `json:"target_amount"`
	CurrentAmount int64       `json:"current_amount"`
	TargetDate    time.Time   `json:"target_date"`
	Category      string      `json:"category"`
	Description   string      `json:"description,omitempty"`
	IsUsed        bool        `json:"is_used"`
	Progress      float64     `json:"progress"`
	Status        goal.Status `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toResponse(g *goal.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Category:      g.Category,
		Description:   g.Description,
		IsUsed:        g.IsUsed,
		Progress:      g.Progress(),
		Status:        g.Status(),
		CreatedAt:     g.CreatedAt,
	}
}

func toResponseList(goals []*goal.Goal) []goalResponse {
	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = toResponse(g)
	}

	return resp
}

type entryResponse struct {
	ID          uuid.UUID   `json:"id"`
	Type        ledger.Type `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

type contributionResponse struct {
	Goal    goalResponse   `json:"goal"`
	Entry   *entryResponse `json:"entry,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

// writeContribution renders the outcome of a cross-store goal action. A
// partial outcome still reports the applied goal change, with a warning in
// place of the missing ledger entry.
func writeContribution(w http.ResponseWriter, g *goal.Goal, entry *ledger.Transaction, partial *posting.PartialError) {
	resp := contributionResponse{Goal: toResponse(g)}

	if entry != nil {
		resp.Entry = &entryResponse{
			ID:          entry.ID,
			Type:        entry.Type,
			Amount:      entry.Amount,
			Category:    entry.Category,
			Description: entry.Description,
			Date:        entry.Date,
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
