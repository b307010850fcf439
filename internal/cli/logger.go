// Package cli holds the setup shared by the conversion commands.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewLogger returns a stderr text logger tagging every record with the tool
// name and a per-invocation run id, and installs it as the default logger.
func NewLogger(tool, level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)})
	logger := slog.New(handler).With(
		slog.String("tool", tool),
		slog.String("run_id", uuid.NewString()),
	)
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
