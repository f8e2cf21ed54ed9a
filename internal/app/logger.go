package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLogLevel maps a verbosity selector onto a slog level. The CLI and
// the logger share this mapping so the accepted names live in one place.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
}

// ParseLogFormat validates a log output format selector.
func ParseLogFormat(s string) (string, error) {
	format := strings.ToLower(s)
	if format != "text" && format != "json" {
		return "", fmt.Errorf("invalid log-format: must be 'text' or 'json'")
	}
	return format, nil
}

// newLogger builds the batch's isolated logger. It does not touch the
// process-global default, so library code falling back to slog.Default
// stays on the bootstrap logger.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
