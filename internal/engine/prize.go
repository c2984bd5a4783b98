package engine

import (
	"fmt"

	"minilotto/internal/models"
)

// DrawLookup resolves a draw number to its result. *History satisfies it.
type DrawLookup interface {
	Lookup(drawNumber int) (models.DrawResult, bool)
}

// PrizeEngine scores tickets against completed draws.
//
// Tiers are inverted: tier 1 means every number matched, tier n means a
// single match. Zero matches never reach the table.
type PrizeEngine struct {
	table []int
}

// NewPrizeEngine builds an engine for tickets of ticketSize numbers. table
// holds the payout of tier 1 first and must have one positive entry per tier.
func NewPrizeEngine(table []int, ticketSize int) (*PrizeEngine, error) {
	if len(table) != ticketSize {
		return nil, fmt.Errorf("prize table has %d tiers, want %d", len(table), ticketSize)
	}
	for i, p := range table {
		if p <= 0 {
			return nil, fmt.Errorf("prize table tier %d pays %d, want > 0", i+1, p)
		}
	}
	return &PrizeEngine{table: append([]int(nil), table...)}, nil
}

// Table returns the payouts, tier 1 first.
func (e *PrizeEngine) Table() []int {
	return append([]int(nil), e.table...)
}

// Payout returns the prize for tier, or 0 outside the table.
func (e *PrizeEngine) Payout(tier int) int {
	if tier < 1 || tier > len(e.table) {
		return 0
	}
	return e.table[tier-1]
}

// Evaluate computes the outcome of t against its draw. It has no side effects
// and can be called any number of times.
func (e *PrizeEngine) Evaluate(t models.Ticket, draws DrawLookup) models.ScoreOutcome {
	result, ok := draws.Lookup(t.DrawNumber)
	if !ok {
		return models.ScoreOutcome{Status: models.OutcomePending}
	}

	matches := MatchCount(t.Numbers, result.Numbers)
	if matches == 0 {
		return models.ScoreOutcome{Status: models.OutcomeNoMatch}
	}

	tier := len(t.Numbers) - matches + 1
	return models.ScoreOutcome{
		Status:     models.OutcomeWin,
		MatchCount: matches,
		Tier:       tier,
		Payout:     e.Payout(tier),
	}
}

// Apply writes a resolved outcome into t. It reports whether t changed: a
// ticket is scored at most once, and pending outcomes are never applied.
func (e *PrizeEngine) Apply(t *models.Ticket, o models.ScoreOutcome) bool {
	if t.Scored || t.Claimed || o.Status == models.OutcomePending {
		return false
	}
	t.Scored = true
	t.MatchCount = o.MatchCount
	if o.Status == models.OutcomeWin {
		t.Tier = o.Tier
		t.Prize = o.Payout
	}
	return true
}

// MatchCount returns how many distinct ticket numbers appear in drawn.
func MatchCount(ticket, drawn []int) int {
	winning := make(map[int]struct{}, len(drawn))
	for _, n := range drawn {
		winning[n] = struct{}{}
	}

	seen := make(map[int]struct{}, len(ticket))
	count := 0
	for _, n := range ticket {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}
