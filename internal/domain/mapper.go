package domain

import (
	"todo-list/internal/repository"
)

// TaskMapper handles conversion between domain Tasks and repository rows.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a repository row.
func (m *TaskMapper) ToRecord(task Task) repository.Todo {
	return repository.Todo{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
	}
}

// FromRecord converts a repository row to a domain Task.
func (m *TaskMapper) FromRecord(row repository.Todo) Task {
	return Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

// FromRecords converts rows to Tasks. The result is never nil so an empty
// store encodes as [] rather than null.
func (m *TaskMapper) FromRecords(rows []*repository.Todo) []Task {
	tasks := make([]Task, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		tasks = append(tasks, m.FromRecord(*row))
	}
	return tasks
}
