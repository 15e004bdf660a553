package cli

import (
	"context"
	"fmt"

	"todo-list/internal/web"
)

// ServeCommand runs the HTTP front-end
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute serves the page until ctx is cancelled. An optional argument overrides the listen address.
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config.Server
	if len(args) > 0 && args[0] != "" {
		cfg.Addr = args[0]
	}

	server := web.NewServer(c.app.api, cfg)
	fmt.Fprintf(c.app.out, "Serving on http://%s\n", server.Addr())
	return server.Run(ctx)
}
