// Package tui implements the interactive terminal panel.
package tui

import "log/slog"

// Config controls the interactive panel.
type Config struct {
	// Theme selects the color scheme: dark, light or auto. Auto picks
	// based on the terminal background.
	Theme string

	// StartDir is the directory the file picker opens in.
	StartDir string

	// Logger receives debug output. A nil logger discards it.
	Logger *slog.Logger
}
