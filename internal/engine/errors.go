package engine

import "errors"

var (
	// ErrInvalidRange means the sampler was asked for more numbers than the
	// range holds, or for none at all. Only a bad configuration produces it.
	ErrInvalidRange = errors.New("invalid draw range")

	ErrInvalidSelection  = errors.New("invalid number selection")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNothingToClaim    = errors.New("nothing to claim")
	ErrTicketNotFound    = errors.New("ticket not found")
)
