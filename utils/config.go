package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/Matthew1231A/conways-game-of-life/model"
)

// Config holds the configuration for the game
type Config struct {
	Size                int           `json:"size"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	RandomSeed          int64         `json:"random_seed"` // 0 seeds from the clock
	InjectionCount      int           `json:"injection_count"`
	Interactive         bool          `json:"interactive"`
	StartPaused         bool          `json:"start_paused"`
	AgeSpan             int           `json:"age_span"` // generations over which cell colours fade
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:                model.DefaultSize,
		FrameRate:           100 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Interactive:         false,
		StartPaused:         false,
		AgeSpan:             16,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return errors.Errorf("[Validate] size must be positive, got %d", c.Size)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0:
		return errors.Errorf("[Validate] stagnation threshold must not be negative, got %d", c.StagnationThreshold)
	case c.AgeSpan < 1:
		return errors.Errorf("[Validate] age span must be positive, got %d", c.AgeSpan)
	}
	return nil
}
