package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-snake/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	usingDefaults := false
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		config = utils.DefaultConfig()
		usingDefaults = true
	}

	logger, closeLog, err := utils.NewLogger(config)
	if err != nil {
		return err
	}
	defer closeLog()
	if usingDefaults {
		logger.Info("using default configuration", "path", configPath)
	}

	// Handle SIGINT/SIGTERM gracefully; in raw mode Ctrl+C also arrives as a key
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := newScreen()
	if err != nil {
		return err
	}

	result, err := playSession(ctx, config, logger, screen)
	if err != nil {
		logger.Error("session failed", "session", result.ID.String(), "err", err)
		return err
	}

	reportResult(result)
	return nil
}
