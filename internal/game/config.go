package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Config holds the tuning of one session. All durations are wall-clock time
// consumed from the elapsed value passed to Tick.
type Config struct {
	Width       int
	Height      int
	QueueLength int

	// GravityInterval is the time between automatic one-row drops at level 1.
	GravityInterval    time.Duration
	MinGravityInterval time.Duration
	// PlacementDelay is how long a resting piece waits before it locks.
	PlacementDelay time.Duration
	LineClearDelay time.Duration

	UnpauseSteps int
	UnpauseStep  time.Duration

	ShiftRepeat    time.Duration
	SoftDropRepeat time.Duration
	RotateRepeat   time.Duration

	LinesPerLevel int
	Seed          int64
}

func DefaultConfig() Config {
	return Config{
		Width:              BoardWidth,
		Height:             BoardHeight,
		QueueLength:        4,
		GravityInterval:    1000 * time.Millisecond,
		MinGravityInterval: time.Millisecond,
		PlacementDelay:     1000 * time.Millisecond,
		LineClearDelay:     166 * time.Millisecond,
		UnpauseSteps:       3,
		UnpauseStep:        time.Second,
		ShiftRepeat:        100 * time.Millisecond,
		SoftDropRepeat:     25 * time.Millisecond,
		RotateRepeat:       250 * time.Millisecond,
		LinesPerLevel:      10,
		Seed:               1,
	}
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	case c.Height < 4:
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	case c.QueueLength < 1:
		return fmt.Errorf("%w: queue length must be at least 1", ErrInvalidConfig)
	case c.GravityInterval <= 0 || c.MinGravityInterval <= 0:
		return fmt.Errorf("%w: gravity intervals must be positive", ErrInvalidConfig)
	case c.PlacementDelay <= 0 || c.LineClearDelay < 0:
		return fmt.Errorf("%w: lock delay must be positive and clear delay non-negative", ErrInvalidConfig)
	case c.UnpauseSteps < 0 || c.UnpauseStep <= 0:
		return fmt.Errorf("%w: bad unpause countdown", ErrInvalidConfig)
	case c.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines per level must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig applies BLOCKFALL_* environment overrides on top of
// DefaultConfig. getenv is usually os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"BLOCKFALL_WIDTH", &cfg.Width},
		{"BLOCKFALL_HEIGHT", &cfg.Height},
		{"BLOCKFALL_QUEUE", &cfg.QueueLength},
	}
	for _, v := range ints {
		if s := getenv(v.key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", v.key, err)
			}
			*v.dst = n
		}
	}

	millis := []struct {
		key string
		dst *time.Duration
	}{
		{"BLOCKFALL_GRAVITY_MS", &cfg.GravityInterval},
		{"BLOCKFALL_LOCK_DELAY_MS", &cfg.PlacementDelay},
	}
	for _, v := range millis {
		if s := getenv(v.key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", v.key, err)
			}
			*v.dst = time.Duration(n) * time.Millisecond
		}
	}

	if s := getenv("BLOCKFALL_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("BLOCKFALL_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
