package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a money movement. The wire values match
// the enum stored by the original dashboard backend.
type Type string

const (
	TypeIncome  Type = "INGRESO"
	TypeExpense Type = "GASTO"
	TypeSaving  Type = "AHORRO"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeSaving:
		return true
	}

	return false
}

// Transaction is a dated money movement scoped to one owner. Amount is a
// non-negative magnitude in cents; direction is implied by Type.
// Transactions are immutable once created except for deletion.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        Type
	Amount      int64 // Amount in cents
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
