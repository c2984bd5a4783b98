package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickFunc is a scripted Source.
type pickFunc func(n int) int

func (f pickFunc) IntN(n int) int { return f(n) }

var (
	firstPick = pickFunc(func(int) int { return 0 })
	lastPick  = pickFunc(func(n int) int { return n - 1 })
)

func TestSampler_Draw(t *testing.T) {
	t.Run("no duplicates and within range", func(t *testing.T) {
		s := NewSampler(NewSeededSource(7))
		for i := 0; i < 500; i++ {
			got, err := s.Draw(1, 20, 4)
			require.NoError(t, err)
			require.Len(t, got, 4)

			seen := map[int]bool{}
			for _, n := range got {
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, 20)
				assert.False(t, seen[n], "duplicate %d in %v", n, got)
				seen[n] = true
			}
		}
	})

	t.Run("whole range is a permutation", func(t *testing.T) {
		got, err := NewSampler(NewSeededSource(1)).Draw(5, 9, 5)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{5, 6, 7, 8, 9}, got)
	})

	t.Run("scripted source picks from the current pool", func(t *testing.T) {
		got, err := NewSampler(firstPick).Draw(1, 20, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, got)

		got, err = NewSampler(lastPick).Draw(1, 20, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{20, 19, 18, 17}, got)
	})

	t.Run("same seed reproduces draws", func(t *testing.T) {
		a, b := NewSampler(NewSeededSource(42)), NewSampler(NewSeededSource(42))
		for i := 0; i < 10; i++ {
			x, err := a.Draw(1, 49, 6)
			require.NoError(t, err)
			y, err := b.Draw(1, 49, 6)
			require.NoError(t, err)
			assert.Equal(t, x, y)
		}
	})

	t.Run("oversized range", func(t *testing.T) {
		_, err := NewSampler(firstPick).Draw(1, MaxPoolSize+1, 4)
		assert.ErrorIs(t, err, ErrInvalidRange)

		got, err := NewSampler(firstPick).Draw(1, MaxPoolSize, 4)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("invalid range", func(t *testing.T) {
		s := NewSampler(firstPick)
		for _, count := range []int{0, -1, 21} {
			_, err := s.Draw(1, 20, count)
			assert.ErrorIs(t, err, ErrInvalidRange, "count %d", count)
		}
	})
}
