package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
)

// Opener builds the page session for a loaded configuration. The returned
// function releases the underlying store.
type Opener func(ctx context.Context, cfg *config.Config) (api.API, func() error, error)

// OpenPage creates the configured store and performs a page load over it
func OpenPage(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
	store, err := config.CreateStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	page, err := api.New(ctx, store, api.Options{Config: cfg})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return page, store.Close, nil
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	open    Opener
	api     api.API
	closeFn func() error
	config  *config.Config
	out     io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(open Opener) *RootCommand {
	root := &RootCommand{
		open: open,
		out:  os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A to-do list with a web page, a terminal UI and a command line",
		Long: `todo keeps a single ordered list of tasks. Each task has an id, a text and
a completion flag. The same list can be driven from the command line, from a
web page (todo serve) or from a terminal UI (todo tui).

EXAMPLES:
  todo add "Buy milk"                      # Add a task
  todo toggle 1                            # Mark task 1 as done, or as not done
  todo delete 1                            # Delete task 1
  todo list --format markdown              # Print the list as markdown
  todo lang en                             # Switch the interface to English
  todo serve --addr 127.0.0.1:9000         # Serve the page over HTTP
  todo tui                                 # Open the terminal UI

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is YAML, read from TODO_CONFIG or ~/.todo/config.yaml.

  Storage Configuration:
    TODO_STORAGE_BACKEND                   sqlite, memory or neo4j (default: sqlite)
    TODO_DB_DIR                            Database directory (default: ~/.todo)
    TODO_DB_FILENAME                       Database filename (default: todo.db)
    TODO_DB_QUERY_TIMEOUT                  Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT                  Write timeout (default: 5s)
    TODO_NEO4J_URI                         Neo4j URI (default: neo4j://localhost:7687)
    TODO_NEO4J_USERNAME / _PASSWORD / _DATABASE

  Display Configuration:
    TODO_LANGUAGE                          Default language: fr, en, de, es (default: fr)
    TODO_LIST_DEFAULT_FORMAT               table, json, csv or markdown (default: table)
    TODO_MARKDOWN_STYLE                    Markdown style (default: auto)
    TODO_NO_COLOR                          Disable colours (default: false)

  Validation Configuration:
    TODO_VALIDATION_CONTENT_MAX            Max task length (default: 500)

  Server Configuration:
    TODO_SERVER_ADDR                       Listen address (default: 127.0.0.1:8080)

  Application Configuration:
    TODO_APP_TIMEOUT                       Application timeout (default: 60s)
    TODO_APP_VERBOSE                       Enable verbose output (default: false)

GETTING HELP:
  todo [command] --help                    # Get help for any specific command
  todo completion bash                     # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the command line arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetOutput redirects command output
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
}

// Config returns the configuration resolved for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// Close releases the store opened by the last command, if any
func (r *RootCommand) Close() error {
	if r.closeFn == nil {
		return nil
	}
	err := r.closeFn()
	r.closeFn = nil
	r.api = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TODO_CONFIG)")

	// Storage configuration
	flags.String("backend", "", "Storage backend: sqlite, memory or neo4j (overrides TODO_STORAGE_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TODO_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TODO_DB_WRITE_TIMEOUT)")
	flags.String("neo4j-uri", "", "Neo4j URI (overrides TODO_NEO4J_URI)")

	// Validation configuration
	flags.Int("content-max-length", 0, "Maximum task length (overrides TODO_VALIDATION_CONTENT_MAX)")

	// Display configuration
	flags.String("language", "", "Default language (overrides TODO_LANGUAGE)")
	flags.String("list-format", "", "Default list format (overrides TODO_LIST_DEFAULT_FORMAT)")
	flags.String("markdown-style", "", "Markdown style (overrides TODO_MARKDOWN_STYLE)")
	flags.Bool("no-color", false, "Disable colours (overrides TODO_NO_COLOR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TODO_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a new task",
		Long:  "Add a new task at the end of the list. Blank text is ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewAddCommand(app).Execute(ctx, args)
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle the completion of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewToggleCommand(app).Execute(ctx, args)
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task whatever its state. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewDeleteCommand(app).Execute(ctx, args)
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List every task in insertion order.

Formats: table, json, csv, markdown

Examples:
  todo list                    # Table, or TODO_LIST_DEFAULT_FORMAT
  todo list --format json      # JSON array as stored
  todo list --format csv > tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewListCommand(app).Execute(ctx, []string{format})
			})
		},
	}
	listCmd.Flags().StringP("format", "f", "", "Output format: table, json, csv or markdown")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewRenderCommand(app).Execute(ctx, args)
			})
		},
	}

	langCmd := &cobra.Command{
		Use:   "lang [code]",
		Short: "Show or change the interface language",
		Long: `Without an argument, list the supported languages and mark the current one.
With a language code (fr, en, de, es), save it as the preferred language.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewLangCommand(app).Execute(ctx, args)
			})
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the raw stored keys and values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewDumpCommand(app).Execute(ctx, args)
			})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Erase every task and the saved language",
		Long:  "Erase everything the page has stored. The next task id keeps counting from where it was.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm []string
			if yes, _ := cmd.Flags().GetBool("yes"); yes {
				confirm = []string{"--yes"}
			}
			return r.runWithTimeout(func(ctx context.Context, app *App) error {
				return NewResetCommand(app).Execute(ctx, confirm)
			})
		},
	}
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Long:  "Serve the to-do page and its JSON API until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return r.runUntilSignal(func(ctx context.Context, app *App) error {
				return NewServeCommand(app).Execute(ctx, []string{addr})
			})
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides TODO_SERVER_ADDR)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runUntilSignal(func(ctx context.Context, app *App) error {
				return NewTUICommand(app).Execute(ctx, args)
			})
		},
	}

	r.cmd.AddCommand(
		addCmd,
		toggleCmd,
		deleteCmd,
		listCmd,
		renderCmd,
		langCmd,
		dumpCmd,
		resetCmd,
		serveCmd,
		tuiCmd,
	)
}

// runWithTimeout runs fn with a context bounded by the application timeout
func (r *RootCommand) runWithTimeout(fn func(ctx context.Context, app *App) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	app, err := r.newApp(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, app)
}

// runUntilSignal runs fn until SIGINT or SIGTERM
func (r *RootCommand) runUntilSignal(fn func(ctx context.Context, app *App) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	app, err := r.newApp(openCtx)
	cancel()
	if err != nil {
		return err
	}
	return fn(ctx, app)
}

// newApp opens the page session on first use
func (r *RootCommand) newApp(ctx context.Context) (*App, error) {
	if r.api == nil {
		if r.open == nil {
			return nil, fmt.Errorf("no page opener configured")
		}
		page, closeFn, err := r.open(ctx, r.config)
		if err != nil {
			return nil, err
		}
		r.api = page
		r.closeFn = closeFn
	}

	app := NewAppWithConfig(r.api, r.config)
	app.SetOutput(r.out)
	return app, nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig resolves the configuration: defaults, file, environment, then flags
func (r *RootCommand) loadConfig() error {
	flags := r.cmd.PersistentFlags()

	loader := config.NewLoader()
	if path, _ := flags.GetString("config"); path != "" {
		loader = config.NewLoaderWithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return err
	}

	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	logging.Debugf("config loaded: backend=%s language=%s", cfg.Storage.Backend, cfg.Display.Language)
	return nil
}

// getOverridesFromFlags collects the flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetDuration(name)
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	overrides.Backend = stringFlag("backend")
	overrides.DBDir = stringFlag("db-dir")
	overrides.DBFilename = stringFlag("db-filename")
	overrides.DBQueryTimeout = durationFlag("db-query-timeout")
	overrides.DBWriteTimeout = durationFlag("db-write-timeout")
	overrides.Neo4jURI = stringFlag("neo4j-uri")

	if flags.Changed("content-max-length") {
		v, _ := flags.GetInt("content-max-length")
		overrides.ContentMaxLength = &v
	}

	overrides.Language = stringFlag("language")
	overrides.ListDefaultFormat = stringFlag("list-format")
	overrides.MarkdownStyle = stringFlag("markdown-style")
	overrides.NoColor = boolFlag("no-color")

	overrides.Timeout = durationFlag("app-timeout")
	overrides.Verbose = boolFlag("verbose")

	return overrides
}
