package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-list/internal/api"
	"todo-list/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes the task with the given id
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "usage: todo delete <id>")
	}
	id, err := api.ParseTaskID(args[0])
	if err != nil {
		return err
	}

	item, ok := findItem(c.app.api, id)
	if !ok {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	if err := c.app.api.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(c.app.out, "Deleted task %d: %s\n", item.ID, item.Content)
	return nil
}
