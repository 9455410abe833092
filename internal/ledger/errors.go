package ledger

import "errors"

var (
	// ErrValidation marks rejected input. No persistence call is made when
	// validation fails.
	ErrValidation = errors.New("invalid transaction")

	ErrNotFound = errors.New("transaction not found")
)
