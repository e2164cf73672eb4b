package cli

import (
	"context"

	"todo-list/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.app.client.GetTodos(ctx)
	if err != nil {
		return c.app.errors.Handle("list todos", err)
	}
	c.printTasks(tasks)
	return nil
}

// printTasks prints each task as an "#id  created  title" line followed by
// the indented description.
func (c *ListCommand) printTasks(tasks []domain.Task) {
	if len(tasks) == 0 {
		c.app.printf("No todos found\n")
		return
	}

	format := c.app.config.Display.TimeFormat
	for _, t := range tasks {
		c.app.printf("#%d  %s  %s\n", t.ID, t.CreatedAt.Local().Format(format), t.Title)
		c.app.printf("    %s\n", t.Description)
	}
}
