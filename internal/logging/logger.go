package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger used by the CLI. It writes to
// stderr so diagram and expression output on stdout stays clean, and
// standardizes the "error" key to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything. The library facade
// defaults to it so embedding stays silent.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
