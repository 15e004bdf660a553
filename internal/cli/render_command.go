package cli

import (
	"context"
	"fmt"
)

// RenderCommand prints the page document
type RenderCommand struct {
	app *App
}

// NewRenderCommand creates a new render command handler
func NewRenderCommand(app *App) *RenderCommand {
	return &RenderCommand{app: app}
}

// Execute writes the rendered HTML of the current page
func (c *RenderCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.api.Reload(ctx); err != nil {
		return err
	}
	fmt.Fprint(c.app.out, c.app.api.HTML())
	return nil
}
