package engine

import "minilotto/internal/models"

// TicketStore owns purchased tickets. Tickets live in an arena indexed by
// TicketID-1; removed slots stay nil so ids are never reused. Callers only
// ever receive copies.
type TicketStore struct {
	arena []*models.Ticket
}

// NewTicketStore creates an empty store.
func NewTicketStore() *TicketStore {
	return &TicketStore{}
}

// AddTicket stores a new unclaimed ticket for targetDrawNumber. Identical
// tickets are kept as independent entries.
func (s *TicketStore) AddTicket(numbers []int, targetDrawNumber int) models.Ticket {
	t := &models.Ticket{
		ID:         s.NextID(),
		DrawNumber: targetDrawNumber,
		Numbers:    append([]int(nil), numbers...),
	}
	s.arena = append(s.arena, t)
	return cloneTicket(t)
}

// NextID returns the id the next added ticket will get.
func (s *TicketStore) NextID() models.TicketID {
	return models.TicketID(len(s.arena) + 1)
}

// Get returns a copy of the ticket with the given id.
func (s *TicketStore) Get(id models.TicketID) (models.Ticket, bool) {
	t := s.ref(id)
	if t == nil {
		return models.Ticket{}, false
	}
	return cloneTicket(t), true
}

// AllTickets returns copies of the live tickets in insertion order.
func (s *TicketStore) AllTickets() []models.Ticket {
	out := make([]models.Ticket, 0, len(s.arena))
	for _, t := range s.arena {
		if t != nil {
			out = append(out, cloneTicket(t))
		}
	}
	return out
}

// Len returns the number of live tickets.
func (s *TicketStore) Len() int {
	n := 0
	for _, t := range s.arena {
		if t != nil {
			n++
		}
	}
	return n
}

// Update runs fn against the stored ticket. It is the only write path into
// the arena.
func (s *TicketStore) Update(id models.TicketID, fn func(t *models.Ticket)) error {
	t := s.ref(id)
	if t == nil {
		return ErrTicketNotFound
	}
	fn(t)
	return nil
}

// RemoveTickets drops every ticket matching pred and returns how many were
// removed.
func (s *TicketStore) RemoveTickets(pred func(t models.Ticket) bool) int {
	removed := 0
	for i, t := range s.arena {
		if t != nil && pred(cloneTicket(t)) {
			s.arena[i] = nil
			removed++
		}
	}
	return removed
}

func (s *TicketStore) ref(id models.TicketID) *models.Ticket {
	i := int(id) - 1
	if i < 0 || i >= len(s.arena) {
		return nil
	}
	return s.arena[i]
}

func cloneTicket(t *models.Ticket) models.Ticket {
	c := *t
	c.Numbers = append([]int(nil), t.Numbers...)
	return c
}
