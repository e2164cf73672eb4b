package cli

import (
	"context"

	"todo-list/internal/errors"
)

// HealthChecker is implemented by clients that can probe the server.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthCommand reports whether the server and its store are reachable
type HealthCommand struct {
	app *App
}

// NewHealthCommand creates a new health command handler
func NewHealthCommand(app *App) *HealthCommand {
	return &HealthCommand{app: app}
}

// Execute runs the health command
func (c *HealthCommand) Execute(ctx context.Context, args []string) error {
	checker, ok := c.app.client.(HealthChecker)
	if !ok {
		return errors.NewInvalidInputError("client", "client cannot check health")
	}
	if err := checker.Health(ctx); err != nil {
		return c.app.errors.Handle("check health", err)
	}
	c.app.printf("ok\n")
	return nil
}
