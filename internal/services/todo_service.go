package services

import (
	"context"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo      repository.Repository
	mapper    *domain.TaskMapper
	validator *validation.TodoValidator
}

// NewTodoService creates a new TodoService instance
func NewTodoService(repo repository.Repository) TodoService {
	return &todoServiceImpl{
		repo:      repo,
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTodoValidator(),
	}
}

// invalidInput wraps a validator failure as a validation AppError.
func invalidInput(err error) error {
	if ve, ok := validation.AsValidationError(err); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError("invalid input", err)
}

// storeFailure logs a persistence error and hands it back unchanged.
func storeFailure(procedure string, err error) error {
	logging.Errorf("%s failed: %v", procedure, err)
	return err
}

// invalidOutput reports a row the store returned that is not a valid Task.
func invalidOutput(procedure string, err error) error {
	logging.Errorf("%s produced an invalid todo: %v", procedure, err)
	return errors.WrapError(err, errors.ErrorTypeDatabase, "store returned an invalid todo")
}

// GetTodos lists every task, newest first
func (s *todoServiceImpl) GetTodos(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, storeFailure("getTodos", err)
	}

	tasks := s.mapper.FromRecords(rows)
	if err := s.validator.ValidateTasks(tasks); err != nil {
		return nil, invalidOutput("getTodos", err)
	}

	logging.Debugf("getTodos returned %d todos", len(tasks))
	return tasks, nil
}

// CreateTodo validates and inserts a new task
func (s *todoServiceImpl) CreateTodo(ctx context.Context, in domain.CreateTaskInput) (*domain.Task, error) {
	if err := s.validator.ValidateCreateInput(in); err != nil {
		return nil, invalidInput(err)
	}

	row := s.mapper.ToRecord(domain.NewTask(in.Title, in.Description))
	if err := s.repo.CreateTodo(ctx, &row); err != nil {
		return nil, storeFailure("createTodo", err)
	}

	task := s.mapper.FromRecord(row)
	if err := s.validator.ValidateTask(task); err != nil {
		return nil, invalidOutput("createTodo", err)
	}

	logging.Debugf("createTodo inserted id=%d", task.ID)
	return &task, nil
}

// DeleteTodo validates the id and deletes the matching task if any
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, in domain.DeleteTaskInput) (*domain.DeleteResult, error) {
	if err := s.validator.ValidateDeleteInput(in); err != nil {
		return nil, invalidInput(err)
	}

	deleted, err := s.repo.DeleteTodo(ctx, in.TaskID())
	if err != nil {
		return nil, storeFailure("deleteTodo", err)
	}

	logging.Debugf("deleteTodo id=%d success=%t", in.TaskID(), deleted)
	return &domain.DeleteResult{Success: deleted}, nil
}
