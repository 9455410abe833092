package bill

import (
	"time"

	"github.com/google/uuid"
)

// Bill is a payable obligation split into fixed installments.
// InstallmentAmount is derived once at creation and never recomputed.
type Bill struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	TotalAmount       int64 // cents
	Installments      int
	PaidInstallments  int
	InstallmentAmount int64 // cents
	DueDate           time.Time
	Paid              bool
	Category          string
	CreatedAt         time.Time
}

// RemainingDebt is the outstanding exposure on this bill.
func (b *Bill) RemainingDebt() int64 {
	remaining := int64(b.Installments-b.PaidInstallments) * b.InstallmentAmount
	if remaining < 0 {
		return 0
	}

	return remaining
}

// Receipt describes one registered installment payment. The caller uses it
// to synthesize the paired EXPENSE ledger entry; bill state and ledger state
// live in different stores.
type Receipt struct {
	BillID           uuid.UUID
	Name             string
	Amount           int64 // cents, the fixed installment amount
	PaidInstallments int
	Installments     int
}

// TotalPendingDebt sums the remaining debt over all bills.
func TotalPendingDebt(bills []*Bill) int64 {
	var sum int64

	for _, b := range bills {
		sum += b.RemainingDebt()
	}

	return sum
}
