package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"todo-list/internal/api"
	"todo-list/internal/config"
)

// App represents the main CLI application
type App struct {
	api      api.API
	config   *config.Config
	registry *CommandRegistry
	out      io.Writer
}

// NewApp creates a new CLI application instance with default configuration
func NewApp(page api.API) *App {
	return NewAppWithConfig(page, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(page api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:    page,
		config: cfg,
		out:    os.Stdout,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// SetOutput redirects command output, stdout by default
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}
