package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilotto/internal/models"
)

func TestHistory(t *testing.T) {
	r := models.DrawRange{Start: 1, End: 20, Count: 4}
	h := NewHistory(NewSampler(NewSeededSource(3)))

	assert.Equal(t, 1, h.CurrentDrawNumber())
	_, ok := h.Last()
	assert.False(t, ok)

	for k := 1; k <= 5; k++ {
		result, err := h.RecordDraw(r)
		require.NoError(t, err)
		assert.Equal(t, k, result.DrawNumber)
		assert.Len(t, result.Numbers, r.Count)
		assert.Equal(t, k+1, h.CurrentDrawNumber())
	}

	t.Run("lookup", func(t *testing.T) {
		got, ok := h.Lookup(3)
		require.True(t, ok)
		assert.Equal(t, 3, got.DrawNumber)

		for _, n := range []int{0, -2, 6} {
			_, ok := h.Lookup(n)
			assert.False(t, ok, "draw %d", n)
		}
	})

	t.Run("results are copies", func(t *testing.T) {
		got, _ := h.Lookup(1)
		want := append([]int(nil), got.Numbers...)
		got.Numbers[0] = -1

		again, _ := h.Lookup(1)
		assert.Equal(t, want, again.Numbers)
	})

	t.Run("all in order", func(t *testing.T) {
		all := h.All()
		require.Len(t, all, 5)
		for i, r := range all {
			assert.Equal(t, i+1, r.DrawNumber)
		}
		last, ok := h.Last()
		require.True(t, ok)
		assert.Equal(t, 5, last.DrawNumber)
	})

	t.Run("invalid range leaves no gap", func(t *testing.T) {
		_, err := h.RecordDraw(models.DrawRange{Start: 1, End: 3, Count: 4})
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Equal(t, 6, h.CurrentDrawNumber())
	})
}
