package cli

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute submits the joined arguments as a new task
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("content", "", "usage: todo add \"your text here\"")
	}

	task, err := c.app.api.Submit(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if task == nil {
		fmt.Fprintln(c.app.out, "Nothing to add")
		return nil
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s\n", task.ID, task.Content)
	return nil
}
