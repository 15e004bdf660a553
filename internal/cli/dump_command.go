package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// DumpCommand prints the raw key/value pairs behind the page.
type DumpCommand struct {
	app *App
}

func NewDumpCommand(app *App) *DumpCommand {
	return &DumpCommand{app: app}
}

// Execute writes every stored key with its value and last write time as JSON
func (c *DumpCommand) Execute(ctx context.Context, args []string) error {
	entries, err := c.app.api.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.app.out, "Storage is empty")
		return nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	fmt.Fprintln(c.app.out, string(data))
	return nil
}
