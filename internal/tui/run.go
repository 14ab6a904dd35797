//go:build !nopanel

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive panel and blocks until the user quits.
// A startup failure (no usable terminal, for example) is returned for
// main to report.
func Run(cfg Config) error {
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}
