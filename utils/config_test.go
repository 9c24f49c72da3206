package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.TickInterval != 100*time.Millisecond {
		t.Errorf("TickInterval = %v, want 100ms", c.TickInterval)
	}
	if c.PollInterval != 50*time.Millisecond {
		t.Errorf("PollInterval = %v, want 50ms", c.PollInterval)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"tick_interval": 200000000, "seed": 42, "log_level": "debug"}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if c.TickInterval != 200*time.Millisecond {
		t.Errorf("TickInterval = %v, want 200ms", c.TickInterval)
	}
	if c.PollInterval != 50*time.Millisecond {
		t.Errorf("PollInterval = %v, want default 50ms", c.PollInterval)
	}
	if c.Seed != 42 {
		t.Errorf("Seed = %d, want 42", c.Seed)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig() error = %v, want os.ErrNotExist", err)
	}
	if c != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", c)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "bad json", body: `{"tick_interval":`},
		{name: "zero tick", body: `{"tick_interval": 0}`, invalid: true},
		{name: "negative poll", body: `{"poll_interval": -1}`, invalid: true},
		{name: "poll not shorter than tick", body: `{"tick_interval": 50000000, "poll_interval": 50000000}`, invalid: true},
		{name: "unknown level", body: `{"log_level": "loud"}`, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() error = nil")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestConfig_RandomSeed(t *testing.T) {
	now := time.Unix(0, 12345)

	if got := (Config{Seed: 9}).RandomSeed(now); got != 9 {
		t.Errorf("RandomSeed() = %d, want 9", got)
	}
	if got := (Config{}).RandomSeed(now); got != 12345 {
		t.Errorf("RandomSeed() = %d, want 12345", got)
	}
}
