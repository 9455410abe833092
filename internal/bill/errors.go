package bill

import "errors"

var (
	ErrValidation = errors.New("invalid bill")
	ErrNotFound   = errors.New("bill not found")

	// ErrAlreadyPaid rejects payments once every installment is settled;
	// further attempts never mutate state.
	ErrAlreadyPaid = errors.New("bill already fully paid")
)
