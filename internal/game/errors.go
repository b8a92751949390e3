package game

import "errors"

// Operation-level errors. All are returned synchronously and leave engine,
// team, and shop state exactly as it was before the failing call.
var (
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidShopState  = errors.New("invalid shop state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEmptySlot         = errors.New("empty slot")
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrRosterTooLarge    = errors.New("roster too large")
	ErrInvalidTier       = errors.New("invalid tier")

	// ErrCascadeLimit indicates runaway effect content. It aborts the
	// in-progress battle; the partial event log is retained on the logger.
	ErrCascadeLimit = errors.New("cascade limit exceeded")
)
