package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the startup settings of the game.
// The board size is fixed and deliberately absent.
type Config struct {
	TickInterval time.Duration `json:"tick_interval"`
	PollInterval time.Duration `json:"poll_interval"`
	Seed         uint64        `json:"seed"`
	LogFile      string        `json:"log_file"`
	LogLevel     string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
		Seed:         0, // 0 seeds from the clock
		LogFile:      "",
		LogLevel:     "info",
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
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the intervals and the log level
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.PollInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "poll_interval must be positive, got %v", c.PollInterval)
	}
	if c.PollInterval >= c.TickInterval {
		return errors.Wrapf(ErrInvalidConfig, "poll_interval %v must be shorter than tick_interval %v",
			c.PollInterval, c.TickInterval)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty level means info
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	return level, nil
}

// RandomSeed returns the configured seed, or one taken from now when unset
func (c Config) RandomSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
