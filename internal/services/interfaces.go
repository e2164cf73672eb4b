package services

import (
	"context"

	"todo-list/internal/domain"
)

// TodoService implements the three todo procedures. Every method validates
// its input before touching the store and runs exactly one statement.
type TodoService interface {
	// GetTodos returns every task, newest first. An empty store gives an
	// empty, non-nil slice.
	GetTodos(ctx context.Context) ([]domain.Task, error)

	// CreateTodo inserts a task and returns it with its store-assigned id and
	// created_at.
	CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error)

	// DeleteTodo removes the task with in.ID. A missing id yields
	// Success=false, not an error.
	DeleteTodo(ctx context.Context, in domain.DeleteTaskInput) (*domain.DeleteResult, error)
}
