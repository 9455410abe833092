package goal

import "errors"

var (
	ErrValidation  = errors.New("invalid goal")
	ErrNotFound    = errors.New("goal not found")
	ErrInvalidDate = errors.New("invalid target date")

	// ErrNotCompleted rejects using a goal whose progress is below 100%.
	ErrNotCompleted = errors.New("goal not yet completed")

	// ErrAlreadyUsed rejects using a goal twice; used is a terminal state.
	ErrAlreadyUsed = errors.New("goal savings already used")
)
