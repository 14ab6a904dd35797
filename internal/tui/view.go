//go:build !nopanel

package tui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/guillerpsanchez/HashSafe/internal/report"
)

// boxWidth is the content width of the result and error boxes. Wide
// enough for the 64-character digest plus padding.
const boxWidth = 68

// View implements tea.Model.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Title)
	subtitleStyle := lipgloss.NewStyle().Foreground(m.theme.Subtitle)

	header := titleStyle.Render("HashSafe") + "\n" +
		subtitleStyle.Render("File Hash Calculator")

	var body string
	switch m.phase {
	case phasePick:
		body = m.viewPick()
	case phaseReady:
		body = m.viewReady()
	case phaseHashing:
		body = m.viewHashing()
	case phaseDone:
		body = m.viewDone()
	}

	help := lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m Model) viewPick() string {
	prompt := lipgloss.NewStyle().Foreground(m.theme.NormalText).
		Render("Select a file to hash:")
	return prompt + "\n\n" + m.picker.View()
}

// fileLine renders the selected file's name and size.
func (m Model) fileLine() string {
	name := filepath.Base(m.file)
	line := lipgloss.NewStyle().Foreground(m.theme.NormalText).Bold(true).Render(name)
	if m.fileSize > 0 {
		line += lipgloss.NewStyle().Foreground(m.theme.FaintText).
			Render("  (" + humanize.Bytes(uint64(m.fileSize)) + ")")
	}
	return line
}

func (m Model) viewReady() string {
	hint := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render("press enter to calculate the SHA-256 hash")
	return m.fileLine() + "\n\n" + hint
}

func (m Model) viewHashing() string {
	label := lipgloss.NewStyle().Foreground(m.theme.NormalText).
		Render("Calculating hash...")
	return m.fileLine() + "\n\n" + m.spin.View() + label
}

func (m Model) viewDone() string {
	if m.hashErr != nil {
		errorBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.ErrorText).
			Padding(0, 1).
			Width(boxWidth)
		heading := lipgloss.NewStyle().Foreground(m.theme.ErrorText).Bold(true).
			Render("Error")
		detail := lipgloss.NewStyle().Foreground(m.theme.ErrorText).
			Render(m.hashErr.Error())
		return m.fileLine() + "\n\n" + errorBox.Render(heading+"\n"+detail)
	}

	resultBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Width(boxWidth)

	heading := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).
		Render(report.Algorithm + " Hash")
	digest := lipgloss.NewStyle().Foreground(m.theme.NormalText).
		Render(m.result.Digest)
	meta := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render("computed in " + m.result.Elapsed.Round(time.Millisecond).String())

	content := heading + "\n" + digest + "\n" + meta
	if m.copied {
		content += "\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).
			Render("Copied to clipboard")
	}
	return m.fileLine() + "\n\n" + resultBox.Render(content)
}

// helpLine assembles the context-specific key help.
func (m Model) helpLine() string {
	var parts []string
	switch m.phase {
	case phasePick:
		parts = []string{"enter select", "t theme", "q quit"}
	case phaseReady:
		parts = []string{"enter calculate", "o select file", "t theme", "q quit"}
	case phaseHashing:
		parts = []string{"esc cancel", "q quit"}
	case phaseDone:
		if m.hashErr == nil {
			parts = []string{"y copy hash", "enter recalculate", "o select file", "t theme", "q quit"}
		} else {
			parts = []string{"enter retry", "o select file", "t theme", "q quit"}
		}
	}
	return strings.Join(parts, " · ")
}
