package bill

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jmcardenas/centavo/internal/bill"
	"github.com/jmcardenas/centavo/internal/ledger"
	"github.com/jmcardenas/centavo/internal/posting"
)

type billResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalAmount       int64     `json:"total_amount"`
	Installments      int       `json:"installments"`
	PaidInstallments  int       `json:"paid_installments"`
	InstallmentAmount int64     `json:"installment_amount"`
	RemainingDebt     int64     `json:"remaining_debt"`
	DueDate           time.Time `json:"due_date"`
	Paid              bool      `json:"paid"`
	Category          string    `json:"category,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toResponse(b *bill.Bill) billResponse {
	return billResponse{
		ID:                b.ID,
		Name:              b.Name,
		TotalAmount:       b.TotalAmount,
		Installments:      b.Installments,
		PaidInstallments:  b.PaidInstallments,
		InstallmentAmount: b.InstallmentAmount,
		RemainingDebt:     b.RemainingDebt(),
		DueDate:           b.DueDate,
		Paid:              b.Paid,
		Category:          b.Category,
		CreatedAt:         b.CreatedAt,
	}
}

func toResponseList(bills []*bill.Bill) []billResponse {
	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	return resp
}

type receiptResponse struct {
	BillID           uuid.UUID `json:"bill_id"`
	Name             string    `json:"name"`
	Amount           int64     `json:"amount"`
	PaidInstallments int       `json:"paid_installments"`
	Installments     int       `json:"installments"`
}

type entryResponse struct {
	ID          uuid.UUID   `json:"id"`
	Type        ledger.Type `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

type paymentResponse struct {
	Receipt receiptResponse `json:"receipt"`
	Entry   *entryResponse  `json:"entry,omitempty"`
	Warning string          `json:"warning,omitempty"`
}

func writePayment(w http.ResponseWriter, result *posting.BillPayment, partial *posting.PartialError) {
	resp := paymentResponse{
		Receipt: receiptResponse{
			BillID:           result.Receipt.BillID,
			Name:             result.Receipt.Name,
			Amount:           result.Receipt.Amount,
			PaidInstallments: result.Receipt.PaidInstallments,
			Installments:     result.Receipt.Installments,
		},
	}

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
