package game

import "errors"

// Sentinel errors reported to the presentation layer. All are recoverable;
// callers discriminate with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyCompleted  = errors.New("order already rated and completed")
)
