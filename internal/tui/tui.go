package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/api"
)

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, page api.API, noColor bool) error {
	ApplyColorProfile(noColor)
	_, err := tea.NewProgram(New(ctx, page), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
