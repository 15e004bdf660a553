package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo-list/internal/render"
)

var (
	colorValidated   = lipgloss.Color("#00FF0D")
	colorUnvalidated = lipgloss.Color("#FF0000")
	colorMuted       = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	styleCursor = lipgloss.NewStyle().Bold(true)
	styleHelp   = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
	styleError  = lipgloss.NewStyle().Foreground(colorUnvalidated).Bold(true)
)

// variantStyle mirrors the page glow: green when validated, red otherwise.
func variantStyle(v render.Variant) lipgloss.Style {
	if v == render.Validated {
		return lipgloss.NewStyle().Foreground(colorValidated)
	}
	return lipgloss.NewStyle().Foreground(colorUnvalidated)
}

// ApplyColorProfile disables colours when noColor is set or NO_COLOR is present.
func ApplyColorProfile(noColor bool) {
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
