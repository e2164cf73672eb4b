package sqlite

import (
	"todo-list/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTodo scans id, title, description, created_at.
func ScanTodo(scanner Scanner) (*repository.Todo, error) {
	todo := &repository.Todo{}
	var createdAt string

	err := scanner.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	todo.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// ScanTodos scans every remaining row. The result is empty, not nil, when
// there are no rows.
func ScanTodos(rows Rows) ([]*repository.Todo, error) {
	todos := make([]*repository.Todo, 0)
	for rows.Next() {
		todo, err := ScanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
