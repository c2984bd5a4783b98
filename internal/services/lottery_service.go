package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/logger"

	"minilotto/internal/engine"
	"minilotto/internal/models"
)

// Options configures a LotteryService. Source is the sampler's randomness;
// tests pass a scripted one.
type Options struct {
	Range           models.DrawRange
	TicketPrice     int
	StartingBalance int
	PrizeTable      []int
	Source          engine.Source
}

// LotteryService owns the whole game state: wallet, tickets and draw
// history. Every exported method is one atomic transition.
type LotteryService struct {
	mu sync.Mutex

	rng     models.DrawRange
	price   int
	sampler *engine.Sampler
	history *engine.History
	tickets *engine.TicketStore
	prizes  *engine.PrizeEngine
	wallet  *engine.Wallet
}

// NewLotteryService creates and initializes a new LotteryService.
func NewLotteryService(opts Options) (*LotteryService, error) {
	r := opts.Range
	if r.Count <= 0 || r.Count > r.Size() || r.Size() > engine.MaxPoolSize {
		return nil, fmt.Errorf("%w: count %d over [%d, %d]", engine.ErrInvalidRange, r.Count, r.Start, r.End)
	}
	if opts.TicketPrice < 0 {
		return nil, fmt.Errorf("%w: ticket price %d", engine.ErrInvalidAmount, opts.TicketPrice)
	}
	if opts.Source == nil {
		return nil, errors.New("no random source configured")
	}

	prizes, err := engine.NewPrizeEngine(opts.PrizeTable, r.Count)
	if err != nil {
		return nil, err
	}
	wallet, err := engine.NewWallet(opts.StartingBalance)
	if err != nil {
		return nil, err
	}

	sampler := engine.NewSampler(opts.Source)
	return &LotteryService{
		rng:     r,
		price:   opts.TicketPrice,
		sampler: sampler,
		history: engine.NewHistory(sampler),
		tickets: engine.NewTicketStore(),
		prizes:  prizes,
		wallet:  wallet,
	}, nil
}

// Purchase buys a ticket with the given numbers for the next draw.
func (s *LotteryService) Purchase(numbers []int) models.PurchaseResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateSelection(numbers); err != nil {
		logger.Infof("Rejected purchase %v: %v", numbers, err)
		return models.PurchaseResult{Reason: models.ReasonInvalidSelection}
	}
	return s.buy(numbers)
}

// QuickPick buys a ticket whose numbers are drawn by the sampler.
func (s *LotteryService) QuickPick() (models.PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	numbers, err := s.sampler.Draw(s.rng.Start, s.rng.End, s.rng.Count)
	if err != nil {
		return models.PurchaseResult{}, err
	}
	return s.buy(numbers), nil
}

func (s *LotteryService) buy(numbers []int) models.PurchaseResult {
	if err := s.wallet.Debit(s.price, s.tickets.NextID()); err != nil {
		logger.Infof("Rejected purchase %v: %v", numbers, err)
		if errors.Is(err, engine.ErrInsufficientFunds) {
			return models.PurchaseResult{Reason: models.ReasonInsufficientFunds}
		}
		return models.PurchaseResult{Reason: models.ReasonInvalidSelection}
	}

	ticket := s.tickets.AddTicket(numbers, s.history.CurrentDrawNumber())
	logger.Infof("Ticket %d bought for draw %d: %v", ticket.ID, ticket.DrawNumber, ticket.Numbers)
	return models.PurchaseResult{OK: true, Ticket: &ticket}
}

// validateSelection requires exactly Count distinct in-range numbers.
func (s *LotteryService) validateSelection(numbers []int) error {
	if len(numbers) != s.rng.Count {
		return fmt.Errorf("%w: got %d numbers, want %d", engine.ErrInvalidSelection, len(numbers), s.rng.Count)
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if !s.rng.Contains(n) {
			return fmt.Errorf("%w: %d outside [%d, %d]", engine.ErrInvalidSelection, n, s.rng.Start, s.rng.End)
		}
		if seen[n] {
			return fmt.Errorf("%w: %d picked twice", engine.ErrInvalidSelection, n)
		}
		seen[n] = true
	}
	return nil
}

// RunDraw performs the next draw. Tickets are scored lazily afterwards.
func (s *LotteryService) RunDraw() (models.DrawResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.history.RecordDraw(s.rng)
	if err != nil {
		return models.DrawResult{}, err
	}
	logger.Infof("Draw %d: %v", result.DrawNumber, result.Numbers)
	return result, nil
}

// Claim pays an unclaimed prize into the wallet. Anything else, including an
// unknown id or a second claim, reports nothing_to_claim.
func (s *LotteryService) Claim(id models.TicketID) models.ClaimResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount, err := s.claim(id)
	if err != nil {
		logger.Infof("Nothing to claim on ticket %d: %v", id, err)
		return models.ClaimResult{Reason: models.ReasonNothingToClaim}
	}
	logger.Infof("Ticket %d claimed %d", id, amount)
	return models.ClaimResult{OK: true, Amount: amount}
}

func (s *LotteryService) claim(id models.TicketID) (int, error) {
	if err := s.score(id); err != nil {
		return 0, err
	}
	t, _ := s.tickets.Get(id)
	if t.Claimed || t.Prize <= 0 {
		return 0, engine.ErrNothingToClaim
	}
	if err := s.wallet.Credit(t.Prize, id); err != nil {
		return 0, err
	}
	err := s.tickets.Update(id, func(t *models.Ticket) {
		t.Prize = 0
		t.Claimed = true
	})
	return t.Prize, err
}

// score applies the current outcome to a ticket if its draw has resolved.
func (s *LotteryService) score(id models.TicketID) error {
	t, ok := s.tickets.Get(id)
	if !ok {
		return engine.ErrTicketNotFound
	}
	outcome := s.prizes.Evaluate(t, s.history)
	return s.tickets.Update(id, func(t *models.Ticket) {
		s.prizes.Apply(t, outcome)
	})
}

func (s *LotteryService) scoreAll() {
	for _, t := range s.tickets.AllTickets() {
		if err := s.score(t.ID); err != nil {
			logger.Warningf("Scoring ticket %d: %v", t.ID, err)
		}
	}
}

// CurrentState returns a snapshot for rendering, scoring any ticket whose
// draw has resolved since the last look.
func (s *LotteryService) CurrentState() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scoreAll()

	snap := models.Snapshot{
		DrawNumber:    s.history.CurrentDrawNumber(),
		WalletBalance: s.wallet.Balance(),
		Tickets:       make([]models.TicketView, 0, s.tickets.Len()),
	}
	if last, ok := s.history.Last(); ok {
		snap.LastResult = &last
	}
	for _, t := range s.tickets.AllTickets() {
		snap.Tickets = append(snap.Tickets, models.TicketView{Ticket: t, Status: ticketStatus(t)})
	}
	return snap
}

func ticketStatus(t models.Ticket) string {
	switch {
	case t.Claimed:
		return "claimed"
	case !t.Scored:
		return string(models.OutcomePending)
	case t.Prize > 0:
		return string(models.OutcomeWin)
	default:
		return string(models.OutcomeNoMatch)
	}
}

// Ticket returns one ticket, scored.
func (s *LotteryService) Ticket(id models.TicketID) (models.TicketView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.score(id); err != nil {
		return models.TicketView{}, err
	}
	t, _ := s.tickets.Get(id)
	return models.TicketView{Ticket: t, Status: ticketStatus(t)}, nil
}

// Draws returns the completed draws, oldest first.
func (s *LotteryService) Draws() []models.DrawResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.All()
}

// Draw returns one completed draw.
func (s *LotteryService) Draw(drawNumber int) (models.DrawResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Lookup(drawNumber)
}

// Ledger returns the wallet movements, oldest first.
func (s *LotteryService) Ledger() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.Ledger()
}

// Range returns the configured game shape.
func (s *LotteryService) Range() models.DrawRange {
	return s.rng
}

// TicketPrice returns the configured ticket price.
func (s *LotteryService) TicketPrice() int {
	return s.price
}

// PrizeTable returns the configured payouts, tier 1 first.
func (s *LotteryService) PrizeTable() []int {
	return s.prizes.Table()
}

// Cleanup removes resolved tickets that can no longer pay out: losers and
// already claimed winners. Pending and unclaimed winning tickets stay.
func (s *LotteryService) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scoreAll()
	removed := s.tickets.RemoveTickets(func(t models.Ticket) bool {
		return t.Claimed || (t.Scored && t.Prize == 0)
	})
	if removed > 0 {
		logger.Infof("Cleaned up %d resolved tickets", removed)
	}
	return removed
}
