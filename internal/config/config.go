package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"minilotto/internal/engine"
	"minilotto/internal/models"
)

// Config is the game and server configuration. It is fixed at startup.
type Config struct {
	Range           models.DrawRange
	TicketPrice     int
	StartingBalance int
	PrizeTable      []int
	Seed            uint64

	Port            string
	CORSOrigins     []string
	CleanupInterval time.Duration
	Verbose         bool
}

// Default returns the 1..20 pick-4 game.
func Default() Config {
	return Config{
		Range:           models.DrawRange{Start: 1, End: 20, Count: 4},
		TicketPrice:     5,
		StartingBalance: 100,
		PrizeTable:      []int{50, 20, 10, 5},
		Port:            "8080",
		CORSOrigins:     []string{"http://localhost:3000"},
		CleanupInterval: 10 * time.Minute,
	}
}

// LoadDotEnv copies .env into the process environment. It fails when there
// is no .env file, which callers treat as informational.
func LoadDotEnv() error {
	return godotenv.Load()
}

// Load reads the process environment on top of Default.
func Load() (Config, error) {
	return FromEnv(os.Getenv)
}

// VerboseFromEnv reads LOTTO_VERBOSE on its own so logging can be set up
// before the rest of the configuration is parsed. Malformed values mean false.
func VerboseFromEnv(getenv func(string) string) bool {
	v, _ := strconv.ParseBool(getenv("LOTTO_VERBOSE"))
	return v
}

// FromEnv builds a Config from getenv; unset keys keep their defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	var err error

	ints := []struct {
		key string
		dst *int
	}{
		{"LOTTO_RANGE_START", &cfg.Range.Start},
		{"LOTTO_RANGE_END", &cfg.Range.End},
		{"LOTTO_TICKET_SIZE", &cfg.Range.Count},
		{"LOTTO_TICKET_PRICE", &cfg.TicketPrice},
		{"LOTTO_STARTING_BALANCE", &cfg.StartingBalance},
	}
	for _, f := range ints {
		v := getenv(f.key)
		if v == "" {
			continue
		}
		if *f.dst, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
	}

	if v := getenv("LOTTO_PRIZE_TABLE"); v != "" {
		cfg.PrizeTable = cfg.PrizeTable[:0:0]
		for _, part := range strings.Split(v, ",") {
			p, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Config{}, fmt.Errorf("LOTTO_PRIZE_TABLE: %w", err)
			}
			cfg.PrizeTable = append(cfg.PrizeTable, p)
		}
	}
	if v := getenv("LOTTO_SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("LOTTO_SEED: %w", err)
		}
	}
	if v := getenv("LOTTO_CLEANUP_INTERVAL"); v != "" {
		if cfg.CleanupInterval, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("LOTTO_CLEANUP_INTERVAL: %w", err)
		}
	}
	if v := getenv("LOTTO_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getenv("LOTTO_VERBOSE"); v != "" {
		if cfg.Verbose, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("LOTTO_VERBOSE: %w", err)
		}
	}
	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, cfg.Validate()
}

// Validate checks the game invariants. A failure here is a setup error.
func (c Config) Validate() error {
	r := c.Range
	if r.Count <= 0 || r.Count > r.Size() {
		return fmt.Errorf("%w: count %d over [%d, %d]", engine.ErrInvalidRange, r.Count, r.Start, r.End)
	}
	if r.Size() > engine.MaxPoolSize {
		return fmt.Errorf("%w: [%d, %d] holds more than %d numbers", engine.ErrInvalidRange, r.Start, r.End, engine.MaxPoolSize)
	}
	if c.TicketPrice < 0 {
		return fmt.Errorf("ticket price %d is negative", c.TicketPrice)
	}
	if c.StartingBalance < 0 {
		return fmt.Errorf("starting balance %d is negative", c.StartingBalance)
	}
	if len(c.PrizeTable) != r.Count {
		return fmt.Errorf("prize table has %d tiers, want %d", len(c.PrizeTable), r.Count)
	}
	for i, p := range c.PrizeTable {
		if p <= 0 {
			return fmt.Errorf("prize tier %d pays %d, want > 0", i+1, p)
		}
	}
	return nil
}

// SeedOrClock returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) SeedOrClock() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
