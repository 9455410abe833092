package savings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Pool is the un-earmarked savings balance of one owner: a single scalar,
// not a ledger of entries. An owner without a row reads as a zero pool.
type Pool struct {
	OwnerID   uuid.UUID
	Total     int64 // cents, never negative
	UpdatedAt time.Time
}

var (
	ErrValidation = errors.New("invalid savings amount")

	// ErrInsufficientFunds rejects a withdrawal exceeding the pool total;
	// the total is left unchanged.
	ErrInsufficientFunds = errors.New("insufficient free savings")
)
