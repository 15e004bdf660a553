package cli

import (
	"context"
	"strings"

	"todo-list/internal/errors"
)

// Command is one verb of the plain CLI front-end.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry dispatches a verb to its handler and remembers the order
// verbs were registered in, which is the order usage lists them.
type CommandRegistry struct {
	commands map[string]Command
	synopsis map[string]string
	order    []string
}

func NewCommandRegistry(app *App) *CommandRegistry {
	r := &CommandRegistry{
		commands: map[string]Command{},
		synopsis: map[string]string{},
	}

	r.register("add", `"your text here"`, NewAddCommand(app))
	r.register("toggle", "<id>", NewToggleCommand(app))
	r.register("delete", "<id>", NewDeleteCommand(app))
	r.register("list", "[table|json|csv|markdown]", NewListCommand(app))
	r.register("render", "", NewRenderCommand(app))
	r.register("lang", "[code]", NewLangCommand(app))
	r.register("dump", "", NewDumpCommand(app))
	r.register("reset", "--yes", NewResetCommand(app))
	r.register("serve", "[addr]", NewServeCommand(app))
	r.register("tui", "", NewTUICommand(app))

	return r
}

// Register adds or replaces a verb with no argument synopsis.
func (r *CommandRegistry) Register(name string, command Command) {
	r.register(name, "", command)
}

func (r *CommandRegistry) register(name, args string, command Command) {
	if _, seen := r.commands[name]; !seen {
		r.order = append(r.order, name)
	}
	r.commands[name] = command
	r.synopsis[name] = args
}

func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, ok := r.commands[commandName]
	if !ok {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

func (r *CommandRegistry) GetUsage() string {
	var b strings.Builder
	for i, name := range r.order {
		if i == 0 {
			b.WriteString("usage: ")
		} else {
			b.WriteString("\n       ")
		}
		b.WriteString("todo " + name)
		if args := r.synopsis[name]; args != "" {
			b.WriteString(" " + args)
		}
	}
	return b.String()
}
