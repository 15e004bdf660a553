package cli

import (
	"context"

	"todo-list/internal/tui"
)

// TUICommand runs the terminal front-end
type TUICommand struct {
	app *App
}

// NewTUICommand creates a new tui command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app}
}

// Execute blocks until the user quits the terminal UI
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	return tui.Run(ctx, c.app.api, c.app.config.Display.NoColor)
}
