package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/repository"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Environment
	}{
		{name: "development", value: "development", want: Development},
		{name: "testing", value: "testing", want: Testing},
		{name: "production", value: "production", want: Production},
		{name: "unset defaults to production", value: "", want: Production},
		{name: "unknown defaults to production", value: "staging", want: Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TODO_ENV", tt.value)
			assert.Equal(t, tt.want, GetEnvironment())
		})
	}
}

func exerciseRepository(t *testing.T, repo repository.Repository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	todo := &repository.Todo{Title: "Test Task", Description: "created by factory test"}
	require.NoError(t, repo.CreateTodo(ctx, todo))
	assert.Positive(t, todo.ID)

	todos, err := repo.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Test Task", todos[0].Title)
}

func TestRepositoryFactory_Testing(t *testing.T) {
	repo, err := NewRepositoryFactory(Testing, nil).CreateRepository(context.Background())
	require.NoError(t, err)
	defer repo.Close()

	exerciseRepository(t, repo)
}

func TestRepositoryFactory_ProductionSQLite(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "nested", "dir")
	cfg.Database.Filename = "factory.db"

	repo, err := NewRepositoryFactory(Production, cfg).CreateRepository(context.Background())
	require.NoError(t, err)
	defer repo.Close()

	exerciseRepository(t, repo)

	_, err = os.Stat(cfg.GetDatabasePath())
	assert.NoError(t, err, "database file should exist")
}

func TestRepositoryFactory_ProductionErrors(t *testing.T) {
	tests := []struct {
		name   string
		config func() *Config
	}{
		{
			name:   "missing config",
			config: func() *Config { return nil },
		},
		{
			name: "unsupported driver",
			config: func() *Config {
				cfg := NewConfig()
				cfg.Database.Driver = "mysql"
				return cfg
			},
		},
		{
			name: "unreachable postgres",
			config: func() *Config {
				cfg := NewConfig()
				cfg.Database.Driver = DriverPostgres
				cfg.Database.DSN = "postgres://todo@127.0.0.1:1/todo?connect_timeout=1"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewRepositoryFactory(Production, tt.config()).CreateRepository(context.Background())
			assert.Error(t, err)
			assert.Nil(t, repo)
		})
	}
}
