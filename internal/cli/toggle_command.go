package cli

import (
	"context"
	"fmt"
	"strconv"

	"todo-list/internal/api"
	"todo-list/internal/errors"
	"todo-list/internal/render"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute flips the completion state of the task with the given id
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("id", args, "usage: todo toggle <id>")
	}
	id, err := api.ParseTaskID(args[0])
	if err != nil {
		return err
	}
	if _, ok := findItem(c.app.api, id); !ok {
		return errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}

	if err := c.app.api.Toggle(ctx, id); err != nil {
		return err
	}

	item, ok := findItem(c.app.api, id)
	if !ok {
		return nil
	}
	tr := c.app.api.Translator()
	status := tr.T("list.todo", nil)
	if item.Variant == render.Validated {
		status = tr.T("list.done", nil)
	}
	fmt.Fprintf(c.app.out, "Task %d: %s (%s)\n", item.ID, item.Content, status)
	return nil
}

// findItem looks id up among the rendered rows
func findItem(page api.API, id int64) (api.Item, bool) {
	for _, item := range page.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return api.Item{}, false
}
