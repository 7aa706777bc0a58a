package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger.
// It writes one JSON object per line to Stderr, keeping Stdout free for
// protocol frames. The stream is what the log viewer correlates, so the
// record shape (time/level/msg plus event attrs) is part of the contract.
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New with an explicit destination. Tests use it to capture
// the event stream.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
