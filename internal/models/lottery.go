package models

import "time"

// DrawRange is the fixed game shape: numbers are drawn from [Start, End]
// inclusive, Count of them per draw and per ticket.
type DrawRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Count int `json:"count"`
}

// Size returns how many distinct numbers the range holds.
func (r DrawRange) Size() int {
	return r.End - r.Start + 1
}

// Contains reports whether n lies within the range.
func (r DrawRange) Contains(n int) bool {
	return n >= r.Start && n <= r.End
}

// DrawResult stores the winning numbers of one completed draw.
type DrawResult struct {
	DrawNumber int       `json:"drawNumber"`
	Numbers    []int     `json:"numbers"`
	DrawnAt    time.Time `json:"drawnAt"`
}

// TicketID identifies a ticket inside the ticket store. IDs start at 1 and
// are never reused.
type TicketID int

// Ticket is a wager on the draw identified by DrawNumber.
//
// Scored is set once the prize engine has written Prize and Tier for a
// resolved draw. Claimed is set once the prize has been paid into the wallet,
// at which point Prize goes back to 0.
type Ticket struct {
	ID         TicketID `json:"id"`
	DrawNumber int      `json:"drawNumber"`
	Numbers    []int    `json:"numbers"`
	Claimed    bool     `json:"claimed"`
	Prize      int      `json:"prize"`
	Tier       int      `json:"tier,omitempty"`
	MatchCount int      `json:"matchCount"`
	Scored     bool     `json:"scored"`
}

// OutcomeStatus is the state of a ticket relative to its draw.
type OutcomeStatus string

const (
	OutcomePending OutcomeStatus = "pending"
	OutcomeNoMatch OutcomeStatus = "no_match"
	OutcomeWin     OutcomeStatus = "win"
)

// ScoreOutcome is what the prize engine computes for a ticket. Tier and
// Payout are only set for OutcomeWin.
type ScoreOutcome struct {
	Status     OutcomeStatus `json:"status"`
	MatchCount int           `json:"matchCount"`
	Tier       int           `json:"tier,omitempty"`
	Payout     int           `json:"payout"`
}

// LedgerKind tags a wallet movement.
type LedgerKind string

const (
	LedgerPurchase LedgerKind = "purchase"
	LedgerPrize    LedgerKind = "prize"
)

// LedgerEntry records one applied wallet movement.
type LedgerEntry struct {
	ID           string     `json:"id"`
	Kind         LedgerKind `json:"kind"`
	Amount       int        `json:"amount"`
	BalanceAfter int        `json:"balanceAfter"`
	TicketID     TicketID   `json:"ticketId,omitempty"`
	At           time.Time  `json:"at"`
}

// TicketView is the read-only rendering of a ticket.
type TicketView struct {
	Ticket
	Status string `json:"status"` // pending, no_match, win, claimed
}

// Snapshot is the read-only game state handed to the presentation layer.
type Snapshot struct {
	DrawNumber    int          `json:"drawNumber"`
	WalletBalance int          `json:"walletBalance"`
	Tickets       []TicketView `json:"tickets"`
	LastResult    *DrawResult  `json:"lastResult"`
}

// Rejection reasons reported to callers.
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonInvalidSelection  = "invalid_selection"
	ReasonNothingToClaim    = "nothing_to_claim"
)

// PurchaseResult is the outcome of a ticket purchase.
type PurchaseResult struct {
	OK     bool    `json:"ok"`
	Ticket *Ticket `json:"ticket,omitempty"`
	Reason string  `json:"reason,omitempty"`
}

// ClaimResult is the outcome of a prize claim.
type ClaimResult struct {
	OK     bool   `json:"ok"`
	Amount int    `json:"amount,omitempty"`
	Reason string `json:"reason,omitempty"`
}
