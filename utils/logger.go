package utils

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// NewLogger builds the game logger from config. The terminal is owned by the
// game screen, so records go to LogFile or nowhere.
// The returned close function releases the log file.
func NewLogger(config Config) (*slog.Logger, func() error, error) {
	level, err := config.Level()
	if err != nil {
		return nil, nil, errors.Wrap(err, "[NewLogger] bad level")
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if config.LogFile != "" {
		file, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", config.LogFile)
		}
		out = file
		closeFn = file.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
