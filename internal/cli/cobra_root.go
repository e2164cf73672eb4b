package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/rpc"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	env    config.Environment
	config *config.Config
	out    io.Writer

	// newClient builds the RPC client once configuration is final.
	newClient func(cfg *config.Config) TodoClient
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(env config.Environment, out io.Writer) *RootCommand {
	root := &RootCommand{
		env: env,
		out: out,
		newClient: func(cfg *config.Config) TodoClient {
			return rpc.NewClient(cfg.Client.BaseURL, cfg.Client.Timeout)
		},
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A small todo list served over RPC",
		Long: `todo keeps a list of todos behind three remote procedures:
getTodos, createTodo and deleteTodo.

Run "todo serve" to start the server, then use the other commands (or the
interactive "todo tui") to talk to it.

EXAMPLES:
  todo serve                                  # Serve on localhost:3000
  todo add "Buy milk" "2 liters, semi-skimmed"  # Create a todo
  todo list                                   # List todos, newest first
  todo delete 3                               # Delete todo #3
  todo tui                                    # Interactive client

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration (server):
    TODO_ENV                                  development (./todo.db), testing (in-memory) or production
    TODO_DB_DRIVER                            sqlite or postgres (default: sqlite)
    TODO_DB_DIR                               SQLite directory (default: ~/.todo)
    TODO_DB_FILENAME                          SQLite filename (default: todo.db)
    TODO_DB_DSN                               Postgres connection string
    TODO_DB_SCHEMA                            Postgres schema (default: public)

  Server Configuration:
    TODO_SERVER_ADDR                          Listen address (default: localhost:3000)
    TODO_SERVER_READ_TIMEOUT                  Read timeout (default: 15s)
    TODO_SERVER_WRITE_TIMEOUT                 Write timeout (default: 15s)
    TODO_SERVER_SHUTDOWN_TIMEOUT              Graceful shutdown limit (default: 10s)

  Client Configuration:
    TODO_CLIENT_URL                           Server base URL (default: http://localhost:3000)
    TODO_CLIENT_TIMEOUT                       Per-request timeout (default: 10s)
    TODO_TIME_FORMAT                          Time display format (default: 2006-01-02 15:04)

  Application Configuration:
    TODO_APP_TIMEOUT                          Command timeout (default: 60s)
    TODO_APP_VERBOSE                          Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every
// command's context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-driver", "", "Store driver: sqlite or postgres (overrides TODO_DB_DRIVER)")
	flags.String("db-dir", "", "SQLite directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "SQLite filename (overrides TODO_DB_FILENAME)")
	flags.String("db-dsn", "", "Postgres connection string (overrides TODO_DB_DSN)")
	flags.String("db-schema", "", "Postgres schema (overrides TODO_DB_SCHEMA)")

	// Server configuration
	flags.String("addr", "", "Server listen address (overrides TODO_SERVER_ADDR)")

	// Client configuration
	flags.String("url", "", "Server base URL (overrides TODO_CLIENT_URL)")
	flags.Duration("client-timeout", 0, "Per-request timeout (overrides TODO_CLIENT_TIMEOUT)")

	// Display configuration
	flags.String("time-format", "", "Time display format (overrides TODO_TIME_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TODO_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the RPC server",
		Long: `Open the store, apply migrations and serve the todo procedures over HTTP
until interrupted. In-flight requests are drained before the store closes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewServeCommand(r.env, r.config).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List todos, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(cmd, "list", args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <title> <description>",
		Short: "Create a todo",
		Long: `Create a todo. Both the title and the description are required and
must not be empty.

Example:
  todo add "Buy milk" "2 liters"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(cmd, "add", args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo by id",
		Long:  "Delete a todo by id. Deleting an id that does not exist is reported but is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(cmd, "delete", args)
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its store are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runWithTimeout(cmd, "health", args)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive client",
		Long:  "Browse, add (a) and delete (d) todos interactively. Press q to quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// interactive sessions are not bounded by the app timeout
			return r.newApp().Run(cmd.Context(), append([]string{"tui"}, args...))
		},
	}

	r.cmd.AddCommand(
		serveCmd,
		listCmd,
		addCmd,
		deleteCmd,
		healthCmd,
		tuiCmd,
	)
}

func (r *RootCommand) newApp() *App {
	return NewApp(r.newClient(r.config), r.config, r.out)
}

func (r *RootCommand) runWithTimeout(cmd *cobra.Command, name string, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
	defer cancel()

	return r.newApp().Run(ctx, append([]string{name}, args...))
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// loadConfig builds the configuration from defaults, the environment and any
// flags set on the command line.
func (r *RootCommand) loadConfig() error {
	overrides, err := r.getOverridesFromFlags()
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)
	return nil
}

// getOverridesFromFlags collects the flags the user actually set.
func (r *RootCommand) getOverridesFromFlags() (*config.ConfigOverrides, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlags := []struct {
		name string
		dst  **string
	}{
		{"db-driver", &overrides.DBDriver},
		{"db-dir", &overrides.DBDir},
		{"db-filename", &overrides.DBFilename},
		{"db-dsn", &overrides.DBDSN},
		{"db-schema", &overrides.DBSchema},
		{"addr", &overrides.ServerAddr},
		{"url", &overrides.ClientURL},
		{"time-format", &overrides.TimeFormat},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}

	durationFlags := []struct {
		name string
		dst  **time.Duration
	}{
		{"client-timeout", &overrides.ClientTimeout},
		{"app-timeout", &overrides.Timeout},
	}
	for _, f := range durationFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetDuration(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return nil, err
		}
		overrides.Verbose = &v
	}

	return overrides, nil
}
