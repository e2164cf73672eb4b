package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// fakeClient implements TodoClient and HealthChecker for testing
type fakeClient struct {
	tasks     []domain.Task
	nextID    int64
	err       error
	healthErr error

	created []domain.CreateTaskInput
	deleted []int64
}

func newFakeClient(tasks ...domain.Task) *fakeClient {
	f := &fakeClient{tasks: tasks}
	for _, t := range tasks {
		if t.ID > f.nextID {
			f.nextID = t.ID
		}
	}
	return f
}

func (f *fakeClient) GetTodos(ctx context.Context) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Task{}, f.tasks...), nil
}

func (f *fakeClient) CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	f.created = append(f.created, in)
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	task := domain.Task{ID: f.nextID, Title: in.Title, Description: in.Description, CreatedAt: time.Now().UTC()}
	f.tasks = append([]domain.Task{task}, f.tasks...)
	return &task, nil
}

func (f *fakeClient) DeleteTodo(ctx context.Context, id int64) (*domain.DeleteResult, error) {
	f.deleted = append(f.deleted, id)
	if f.err != nil {
		return nil, f.err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return &domain.DeleteResult{Success: true}, nil
		}
	}
	return &domain.DeleteResult{Success: false}, nil
}

func (f *fakeClient) Health(ctx context.Context) error {
	return f.healthErr
}

// listOnlyClient hides Health from the app.
type listOnlyClient struct {
	TodoClient
}

func setupTestApp(t *testing.T, client TodoClient) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.NewConfig()
	cfg.Display.TimeFormat = time.RFC3339
	return NewApp(client, cfg, &out), &out
}

func silenceLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Output()
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(prev) })
	return &buf
}

func TestApp_Run(t *testing.T) {
	app, _ := setupTestApp(t, newFakeClient())
	ctx := context.Background()

	t.Run("no arguments prints usage", func(t *testing.T) {
		err := app.Run(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: todo list")
	})

	t.Run("unknown command", func(t *testing.T) {
		err := app.Run(ctx, []string{"start", "x"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("dispatches to registered command", func(t *testing.T) {
		err := app.Run(ctx, []string{"list"})
		assert.NoError(t, err)
	})
}

func TestNewApp_NilConfigUsesDefaults(t *testing.T) {
	app := NewApp(newFakeClient(), nil, &bytes.Buffer{})

	require.NotNil(t, app.config)
	assert.Equal(t, config.NewConfig().Display.TimeFormat, app.config.Display.TimeFormat)
}

func TestCommandRegistry_Commands(t *testing.T) {
	app, _ := setupTestApp(t, newFakeClient())
	registry := NewCommandRegistry(app)

	for _, name := range []string{"list", "add", "delete", "health", "tui"} {
		_, ok := registry.commands[name]
		assert.True(t, ok, "command %q should be registered", name)
	}
	_, ok := registry.commands["serve"]
	assert.False(t, ok, "serve needs a store and is wired by the root command")
}
