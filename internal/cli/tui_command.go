package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/tui"
)

// runTUI is a variable that can be replaced in tests
var runTUI = tui.Run

// tuiLogPath is where log lines go while the TUI owns the terminal.
var tuiLogPath = filepath.Join(os.TempDir(), "todo-tui.log")

// TUICommand starts the interactive client
type TUICommand struct {
	app *App
}

// NewTUICommand creates a new tui command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app}
}

// Execute runs the TUI until the user quits or ctx is cancelled. Log output is
// sent to tuiLogPath for the session and restored afterwards.
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("args", "tui takes no arguments")
	}

	f, err := tea.LogToFile(tuiLogPath, "todo")
	if err != nil {
		return fmt.Errorf("failed to open tui log: %w", err)
	}
	defer f.Close()

	prev := logging.Output()
	logging.SetOutput(f)
	defer logging.SetOutput(prev)

	return runTUI(ctx, c.app.client, tui.Options{
		TimeFormat: c.app.config.Display.TimeFormat,
	})
}
