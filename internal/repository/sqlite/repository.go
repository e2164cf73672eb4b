// Package sqlite is the default todos store, backed by modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"strconv"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const todoColumns = `id, title, description, created_at`

// SQLiteRepository implements repository.Repository
type SQLiteRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// New creates a new SQLite repository instance and brings its schema up to
// date.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}

	// SQLite has a single writer, and each :memory: connection is its own
	// database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("sqlite store opened at %s", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewInMemory creates a repository on a fresh in-memory database.
func NewInMemory() (*SQLiteRepository, error) {
	return New(MemoryPath)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping checks the connection is usable.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// CreateTodo inserts a todo and fills in its id and created_at from the
// inserted row.
func (r *SQLiteRepository) CreateTodo(ctx context.Context, todo *repository.Todo) error {
	query := `
	INSERT INTO todos (title, description)
	VALUES (?, ?)
	RETURNING ` + todoColumns

	created, err := ScanTodo(r.db.QueryRowContext(ctx, query, todo.Title, todo.Description))
	if err != nil {
		return HandleDatabaseError("insert todo", err)
	}

	*todo = *created
	return nil
}

// GetTodo retrieves a todo by ID
func (r *SQLiteRepository) GetTodo(ctx context.Context, id int64) (*repository.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTodo, "todo", strconv.FormatInt(id, 10), id)
}

// ListTodos retrieves all todos, newest first
func (r *SQLiteRepository) ListTodos(ctx context.Context) ([]*repository.Todo, error) {
	query := `
	SELECT ` + todoColumns + `
	FROM todos
	ORDER BY created_at DESC, id DESC`

	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos")
}

// DeleteTodo deletes a todo by ID and reports whether it existed
func (r *SQLiteRepository) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM todos WHERE id = ?`
	rows, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
