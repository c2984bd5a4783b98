package engine

import (
	"fmt"
	"math/rand/v2"
)

// MaxPoolSize caps the range a Sampler accepts; the pool is rebuilt on
// every draw.
const MaxPoolSize = 1000

// Source picks a uniform index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// Sampler draws distinct numbers from an inclusive range without replacement.
// It is meant for small ranges: every pick shifts the remaining pool.
type Sampler struct {
	src Source
}

// NewSampler creates a Sampler reading its randomness from src.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Draw returns count distinct integers from [start, end] in the order they
// were picked.
func (s *Sampler) Draw(start, end, count int) ([]int, error) {
	if count <= 0 || count > end-start+1 {
		return nil, fmt.Errorf("%w: cannot draw %d from [%d, %d]", ErrInvalidRange, count, start, end)
	}
	if end-start+1 > MaxPoolSize {
		return nil, fmt.Errorf("%w: [%d, %d] holds more than %d numbers", ErrInvalidRange, start, end, MaxPoolSize)
	}

	pool := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pool = append(pool, i)
	}

	drawn := make([]int, 0, count)
	for i := 0; i < count; i++ {
		index := s.src.IntN(len(pool))
		drawn = append(drawn, pool[index])
		pool = append(pool[:index], pool[index+1:]...)
	}
	return drawn, nil
}
