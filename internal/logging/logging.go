// Package logging configures the application-wide structured logger. The
// terminal belongs to the TUI, so logs go to a file under the state dir.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens the log file and installs a text slog handler as the
// default logger. The returned func closes the file.
func Setup(path, level string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	return logger, func() { f.Close() }, nil
}
