package main

import (
	"fmt"
	"log/slog"
	"os"
)

// LevelTrace is a custom log level below debug for verbose tracing,
// mirroring the teacher's lsp/cmd server's own trace level.
const LevelTrace = slog.Level(-8)

func setupLogger(level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch level {
	case "error":
		slogLevel = slog.LevelError
	case "warn":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	case "trace":
		slogLevel = LevelTrace
	default:
		return nil, fmt.Errorf("invalid log level: %q", level)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), nil
}
