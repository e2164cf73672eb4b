// Package repository holds the row model and the store contract shared by the
// SQLite and Postgres backends.
package repository

import (
	"context"
	"time"
)

// Todo is one row of the todos table.
type Todo struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}

// Repository defines the interface for database operations.
// Every method runs exactly one statement.
type Repository interface {
	// CreateTodo inserts todo and fills in the store-assigned ID and CreatedAt.
	CreateTodo(ctx context.Context, todo *Todo) error

	GetTodo(ctx context.Context, id int64) (*Todo, error)

	// ListTodos returns every row, newest first.
	ListTodos(ctx context.Context) ([]*Todo, error)

	// DeleteTodo reports whether a row was removed. A missing id is not an error.
	DeleteTodo(ctx context.Context, id int64) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}
