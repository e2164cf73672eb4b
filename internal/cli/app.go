package cli

import (
	"context"
	"fmt"
	"io"

	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// TodoClient is the remote procedure surface the commands call.
type TodoClient interface {
	GetTodos(ctx context.Context) ([]domain.Task, error)
	CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)
	DeleteTodo(ctx context.Context, id int64) (*domain.DeleteResult, error)
}

// App represents the main CLI application
type App struct {
	client   TodoClient
	config   *config.Config
	out      io.Writer
	errors   *ErrorHandler
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection.
// A nil cfg falls back to defaults.
func NewApp(client TodoClient, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		client: client,
		config: cfg,
		out:    out,
		errors: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
