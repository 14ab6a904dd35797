//go:build !nopanel

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the panel color palette. Colors are lipgloss ANSI
// 256-color codes for broad terminal compatibility.
type Theme struct {
	// Name is the theme identifier shown in the footer (dark/light).
	Name string

	Title    lipgloss.Color
	Subtitle lipgloss.Color

	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	Accent    lipgloss.Color
	ErrorText lipgloss.Color

	BorderColor lipgloss.Color
	HelpText    lipgloss.Color
}

// DarkTheme is the color scheme for dark terminal backgrounds.
var DarkTheme = Theme{
	Name:        "dark",
	Title:       lipgloss.Color("255"),
	Subtitle:    lipgloss.Color("250"),
	NormalText:  lipgloss.Color("252"),
	FaintText:   lipgloss.Color("245"),
	Accent:      lipgloss.Color("75"), // blue
	ErrorText:   lipgloss.Color("196"),
	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("241"),
}

// LightTheme is the color scheme for light terminal backgrounds.
var LightTheme = Theme{
	Name:        "light",
	Title:       lipgloss.Color("235"),
	Subtitle:    lipgloss.Color("240"),
	NormalText:  lipgloss.Color("236"),
	FaintText:   lipgloss.Color("245"),
	Accent:      lipgloss.Color("26"), // blue
	ErrorText:   lipgloss.Color("124"),
	BorderColor: lipgloss.Color("250"),
	HelpText:    lipgloss.Color("247"),
}

// ThemeFor resolves a theme name to a palette. "auto" (and anything
// unrecognized) follows the detected terminal background.
func ThemeFor(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme
	case "light":
		return LightTheme
	}
	if termenv.HasDarkBackground() {
		return DarkTheme
	}
	return LightTheme
}

// Toggle returns the opposite palette.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme
	}
	return DarkTheme
}
