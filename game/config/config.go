package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is fixed for the lifetime of a session.
type Config struct {
	// Cell size in pixels for window frontends.
	PixelSize int `yaml:"pixel_size"`
	// Board side length in cells, walls included.
	BoxSize     int `yaml:"box_size"`
	SnakeLength int `yaml:"snake_length"`
	// Level goes up every LevelIntervalTicks ticks.
	LevelIntervalTicks int `yaml:"level_interval_ticks"`
	// Uneaten food is moved after this many ticks.
	TreatRepositionTicks int           `yaml:"treat_reposition_ticks"`
	LevelIncrease        time.Duration `yaml:"level_increase"`
	MinimumLoopInterval  time.Duration `yaml:"minimum_loop_interval"`
	InitialLoopInterval  time.Duration `yaml:"initial_loop_interval"`
	// Random draws tried before falling back to scanning free cells.
	FoodMaxAttempts int `yaml:"food_max_attempts"`
	// Zero means seed from the wall clock.
	Seed uint64 `yaml:"seed"`
}

// Default returns the classic settings.
func Default() Config {
	return Config{
		PixelSize:            20,
		BoxSize:              10,
		SnakeLength:          3,
		LevelIntervalTicks:   30,
		TreatRepositionTicks: 30,
		LevelIncrease:        200 * time.Millisecond,
		MinimumLoopInterval:  300 * time.Millisecond,
		InitialLoopInterval:  500 * time.Millisecond,
		FoodMaxAttempts:      64,
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.BoxSize < 5:
		return fmt.Errorf("%w: box_size %d is below 5", ErrInvalidConfig, c.BoxSize)
	case c.SnakeLength < 1:
		return fmt.Errorf("%w: snake_length must be positive", ErrInvalidConfig)
	case c.SnakeLength > c.BoxSize-2:
		return fmt.Errorf("%w: snake_length %d does not fit in box_size %d", ErrInvalidConfig, c.SnakeLength, c.BoxSize)
	case c.SnakeLength >= c.InteriorCells():
		return fmt.Errorf("%w: no free cell left for food", ErrInvalidConfig)
	case c.LevelIntervalTicks < 1:
		return fmt.Errorf("%w: level_interval_ticks must be positive", ErrInvalidConfig)
	case c.TreatRepositionTicks < 1:
		return fmt.Errorf("%w: treat_reposition_ticks must be positive", ErrInvalidConfig)
	case c.LevelIncrease < 0:
		return fmt.Errorf("%w: level_increase is negative", ErrInvalidConfig)
	case c.MinimumLoopInterval <= 0:
		return fmt.Errorf("%w: minimum_loop_interval must be positive", ErrInvalidConfig)
	case c.InitialLoopInterval < c.MinimumLoopInterval:
		return fmt.Errorf("%w: initial_loop_interval %s is below minimum %s", ErrInvalidConfig, c.InitialLoopInterval, c.MinimumLoopInterval)
	case c.FoodMaxAttempts < 0:
		return fmt.Errorf("%w: food_max_attempts is negative", ErrInvalidConfig)
	case c.PixelSize < 1:
		return fmt.Errorf("%w: pixel_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// InteriorCells is the number of cells inside the wall ring.
func (c Config) InteriorCells() int {
	side := c.BoxSize - 2
	if side < 0 {
		return 0
	}
	return side * side
}
