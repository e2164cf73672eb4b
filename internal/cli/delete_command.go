package cli

import (
	"context"
	"strconv"

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

// Execute deletes the todo whose id is args[0]. A missing todo is reported
// but is not an error.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("args", "delete takes exactly one id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("id", "must be an integer")
	}

	result, err := c.app.client.DeleteTodo(ctx, id)
	if err != nil {
		return c.app.errors.Handle("delete todo", err)
	}

	if !result.Success {
		c.app.printf("No todo with id %d\n", id)
		return nil
	}
	c.app.printf("Deleted todo #%d\n", id)
	return nil
}
