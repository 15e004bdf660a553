package cli

import (
	"context"
	"fmt"

	"todo-list/internal/errors"
)

// ResetCommand erases every stored key, tasks and language alike.
type ResetCommand struct {
	app *App
}

func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute requires --yes as its only argument
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] != "--yes" {
		return errors.NewInvalidInputError("confirmation", args, "pass --yes to erase every task")
	}
	if err := c.app.api.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, "Storage reset")
	return nil
}
