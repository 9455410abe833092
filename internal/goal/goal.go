package goal

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Status is the derived lifecycle state of a goal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusUsed      Status = "used" // terminal
)

// Goal is a savings target scoped to one owner. CurrentAmount only grows via
// contributions and is kept as a historical high-water mark after the goal's
// savings are used; IsUsed alone marks consumption.
type Goal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  int64 // cents
	CurrentAmount int64 // cents
	TargetDate    time.Time
	Category      string
	Description   string
	IsUsed        bool
	CreatedAt     time.Time
}

// Progress returns completion as a fraction capped at 1.0. A non-positive
// target yields 0 rather than dividing by zero.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	p := float64(g.CurrentAmount) / float64(g.TargetAmount)

	return math.Min(p, 1.0)
}

// Completed reports whether the stored amount has reached the target. Unlike
// Progress, this looks at the raw amounts, so an overfunded goal stays
// completed.
func (g *Goal) Completed() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

func (g *Goal) Status() Status {
	switch {
	case g.IsUsed:
		return StatusUsed
	case g.Completed():
		return StatusCompleted
	default:
		return StatusActive
	}
}

// DaysRemaining returns the whole days until the target date, rounded up.
// Past dates yield negative counts. A missing target date is reported as
// ErrInvalidDate instead of silently entering comparisons.
func (g *Goal) DaysRemaining(now time.Time) (int, error) {
	if g.TargetDate.IsZero() {
		return 0, ErrInvalidDate
	}

	diff := g.TargetDate.Sub(now)

	return int(math.Ceil(diff.Hours() / 24)), nil
}
