package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minilotto/internal/engine"
	"minilotto/internal/models"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv(envOf(nil))
		require.NoError(t, err)
		assert.Equal(t, models.DrawRange{Start: 1, End: 20, Count: 4}, cfg.Range)
		assert.Equal(t, []int{50, 20, 10, 5}, cfg.PrizeTable)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{
			"LOTTO_RANGE_START":      "1",
			"LOTTO_RANGE_END":        "49",
			"LOTTO_TICKET_SIZE":      "6",
			"LOTTO_TICKET_PRICE":     "2",
			"LOTTO_STARTING_BALANCE": "40",
			"LOTTO_PRIZE_TABLE":      "1000, 200, 50, 10, 4, 2",
			"LOTTO_SEED":             "99",
			"LOTTO_CLEANUP_INTERVAL": "30s",
			"LOTTO_CORS_ORIGINS":     "http://a.test,http://b.test",
			"LOTTO_VERBOSE":          "true",
			"PORT":                   "9000",
		}))
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Range.Count)
		assert.Equal(t, []int{1000, 200, 50, 10, 4, 2}, cfg.PrizeTable)
		assert.Equal(t, uint64(99), cfg.SeedOrClock())
		assert.Equal(t, 30*time.Second, cfg.CleanupInterval)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "9000", cfg.Port)
	})

	t.Run("count larger than range", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"LOTTO_RANGE_END": "3"}))
		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})

	t.Run("range too large for the sampler", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"LOTTO_RANGE_END": "2000000000"}))
		assert.ErrorIs(t, err, engine.ErrInvalidRange)
	})

	t.Run("prize table size mismatch", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"LOTTO_PRIZE_TABLE": "50,20"}))
		assert.Error(t, err)
	})

	t.Run("malformed number", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"LOTTO_TICKET_PRICE": "five"}))
		assert.Error(t, err)
	})
}

func TestVerboseFromEnv(t *testing.T) {
	assert.True(t, VerboseFromEnv(envOf(map[string]string{"LOTTO_VERBOSE": "true"})))
	assert.False(t, VerboseFromEnv(envOf(map[string]string{"LOTTO_VERBOSE": "loud"})))
	assert.False(t, VerboseFromEnv(envOf(nil)))
}
