package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"minilotto/internal/models"
)

// Wallet holds the player's balance and a ledger of applied movements.
// The balance never goes negative.
type Wallet struct {
	balance int
	ledger  []models.LedgerEntry
}

// NewWallet creates a wallet holding balance.
func NewWallet(balance int) (*Wallet, error) {
	if balance < 0 {
		return nil, fmt.Errorf("%w: starting balance %d", ErrInvalidAmount, balance)
	}
	return &Wallet{balance: balance}, nil
}

// Balance returns the current balance.
func (w *Wallet) Balance() int {
	return w.balance
}

// Debit takes amount out of the wallet for ticket. If the balance is too low
// nothing changes and ErrInsufficientFunds is returned.
func (w *Wallet) Debit(amount int, ticket models.TicketID) error {
	if amount < 0 {
		return fmt.Errorf("%w: debit %d", ErrInvalidAmount, amount)
	}
	if w.balance < amount {
		return fmt.Errorf("%w: balance %d, need %d", ErrInsufficientFunds, w.balance, amount)
	}
	w.balance -= amount
	w.record(models.LedgerPurchase, -amount, ticket)
	return nil
}

// Credit adds amount won by ticket.
func (w *Wallet) Credit(amount int, ticket models.TicketID) error {
	if amount < 0 {
		return fmt.Errorf("%w: credit %d", ErrInvalidAmount, amount)
	}
	w.balance += amount
	w.record(models.LedgerPrize, amount, ticket)
	return nil
}

// Ledger returns the applied movements, oldest first.
func (w *Wallet) Ledger() []models.LedgerEntry {
	return append([]models.LedgerEntry(nil), w.ledger...)
}

func (w *Wallet) record(kind models.LedgerKind, amount int, ticket models.TicketID) {
	w.ledger = append(w.ledger, models.LedgerEntry{
		ID:           uuid.NewString(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: w.balance,
		TicketID:     ticket,
		At:           time.Now(),
	})
}
