package game

import "fmt"

// Ledger holds the household coin balance. The balance never goes negative:
// a debit that would overdraw is rejected outright, never clamped.
type Ledger struct {
	balance int
}

// NewLedger creates a ledger seeded with the starting balance. Negative
// starts are treated as zero.
func NewLedger(start int) *Ledger {
	if start < 0 {
		start = 0
	}
	return &Ledger{balance: start}
}

// Balance returns the current coin balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// Credit adds amount to the balance. Amount must be positive.
func (l *Ledger) Credit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount %d: %w", amount, ErrInvalidInput)
	}
	l.balance += amount
	return nil
}

// Debit removes amount from the balance. Amount must be positive and must
// not exceed the balance; a failed debit leaves the balance unchanged.
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("debit amount %d: %w", amount, ErrInvalidInput)
	}
	if amount > l.balance {
		return fmt.Errorf("debit %d exceeds balance %d: %w", amount, l.balance, ErrInsufficientFunds)
	}
	l.balance -= amount
	return nil
}
