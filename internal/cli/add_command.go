package cli

import (
	"context"

	"todo-list/internal/domain"
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

// Execute creates a todo from args[0] (title) and args[1] (description).
// Empty strings are passed through so the server reports them.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("args", "add takes a title and a description")
	}

	task, err := c.app.client.CreateTodo(ctx, domain.CreateTaskInput{
		Title:       args[0],
		Description: args[1],
	})
	if err != nil {
		return c.app.errors.Handle("add todo", err)
	}

	c.app.printf("Created todo #%d: %s\n", task.ID, task.Title)
	return nil
}
