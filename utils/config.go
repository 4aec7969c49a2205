package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation driver
type Config struct {
	Generations         int           `json:"generations"`
	Pattern             string        `json:"pattern"`
	OriginX             int64         `json:"origin_x"`
	OriginY             int64         `json:"origin_y"`
	SeedWidth           int64         `json:"seed_width"`
	SeedHeight          int64         `json:"seed_height"`
	RandomDensity       float64       `json:"random_density"`
	RandomSeed          int64         `json:"random_seed"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	HistorySize         int           `json:"history_size"`
	LogLevel            string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:         10000,
		Pattern:             "rpentomino",
		SeedWidth:           60,
		SeedHeight:          30,
		RandomDensity:       0.15,
		RandomSeed:          1,
		FrameRate:           0,
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		HistorySize:         16,
		LogLevel:            "info",
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

	return config, nil
}

// Validate checks the configuration for values the driver cannot run with.
// knownPattern reports whether a pattern name can be seeded.
func (c Config) Validate(knownPattern func(string) bool) error {
	switch {
	case c.Generations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative: %d", c.Generations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0,1]: %v", c.RandomDensity)
	case c.SeedWidth <= 0 || c.SeedHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] seed area must be positive: %dx%d", c.SeedWidth, c.SeedHeight)
	case c.HistorySize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] history_size must be positive: %d", c.HistorySize)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] stagnation_threshold and injection_count must not be negative")
	case knownPattern != nil && !knownPattern(c.Pattern):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern: %q", c.Pattern)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}
