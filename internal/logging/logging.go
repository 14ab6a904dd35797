// Package logging builds the application logger.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level. Debug
// output goes to stderr so it never mixes with the stdout result
// contract.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Level picks the log level for the verbose switch.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
