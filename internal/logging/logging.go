// Package logging installs the process-wide slog logger. The TUI owns the
// terminal, so interactive runs log JSON to a file; CLI subcommands log
// text to stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Stderr selects stderr as the log destination.
const Stderr = "-"

// Setup installs a JSON logger writing to path at level and returns a
// function that closes the file. Path Stderr writes text to stderr.
func Setup(path string, level slog.Level) (func() error, error) {
	if path == "" || path == Stderr {
		slog.SetDefault(NewText(os.Stderr, level))
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(NewJSON(f, level))
	return f.Close, nil
}

// NewJSON returns a JSON logger tagged with the application name.
func NewJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).
		With("app", "apprentice")
}

// NewText returns a human-readable logger.
func NewText(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
