package engine

import (
	"time"

	"minilotto/internal/models"
)

// History is the append-only log of completed draws.
type History struct {
	sampler *Sampler
	results []models.DrawResult
}

// NewHistory creates an empty History drawing through sampler.
func NewHistory(sampler *Sampler) *History {
	return &History{sampler: sampler}
}

// RecordDraw draws r.Count numbers, assigns the next draw number and appends
// the result to the log.
func (h *History) RecordDraw(r models.DrawRange) (models.DrawResult, error) {
	numbers, err := h.sampler.Draw(r.Start, r.End, r.Count)
	if err != nil {
		return models.DrawResult{}, err
	}

	result := models.DrawResult{
		DrawNumber: len(h.results) + 1,
		Numbers:    numbers,
		DrawnAt:    time.Now(),
	}
	h.results = append(h.results, result)
	return cloneResult(result), nil
}

// Lookup returns the draw with the given number. ok is false while that draw
// has not happened yet.
func (h *History) Lookup(drawNumber int) (result models.DrawResult, ok bool) {
	if drawNumber < 1 || drawNumber > len(h.results) {
		return models.DrawResult{}, false
	}
	return cloneResult(h.results[drawNumber-1]), true
}

// CurrentDrawNumber is the draw that tickets bought now are wagered on.
func (h *History) CurrentDrawNumber() int {
	return len(h.results) + 1
}

// Last returns the most recent draw, if any.
func (h *History) Last() (models.DrawResult, bool) {
	return h.Lookup(len(h.results))
}

// All returns every completed draw, oldest first.
func (h *History) All() []models.DrawResult {
	out := make([]models.DrawResult, len(h.results))
	for i, r := range h.results {
		out[i] = cloneResult(r)
	}
	return out
}

func cloneResult(r models.DrawResult) models.DrawResult {
	r.Numbers = append([]int(nil), r.Numbers...)
	return r
}
