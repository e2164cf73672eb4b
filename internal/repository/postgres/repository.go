// Package postgres is a todos store on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
)

// DefaultSchema is used when no schema is configured.
const DefaultSchema = "public"

const todosTable = "todos"

// Repository implements repository.Repository on a pgx pool.
type Repository struct {
	pool   *pgxpool.Pool
	schema string
	table  string
	owned  bool
}

var _ repository.Repository = (*Repository)(nil)

// New connects to dsn, applies migrations to schema and returns a Repository
// that owns the pool.
func New(ctx context.Context, dsn string, schema string) (*Repository, error) {
	if schema == "" {
		schema = DefaultSchema
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.FromStoreError("connect", err)
	}
	if err := ApplyMigrations(ctx, pool, schema); err != nil {
		pool.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	repo, err := NewWithPool(pool, schema)
	if err != nil {
		pool.Close()
		return nil, err
	}
	repo.owned = true

	logging.Debugf("postgres store ready in schema %s", schema)
	return repo, nil
}

// NewWithPool wraps an existing pool. The schema must already be migrated
// and Close leaves the pool open.
func NewWithPool(pool *pgxpool.Pool, schema string) (*Repository, error) {
	quotedSchema, err := quoteIdent(schema)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("schema", err.Error())
	}
	return &Repository{
		pool:   pool,
		schema: schema,
		table:  fmt.Sprintf("%s.%s", quotedSchema, todosTable),
	}, nil
}

// Close releases the pool if this Repository opened it.
func (r *Repository) Close() error {
	if r.owned {
		r.pool.Close()
	}
	return nil
}

// Ping checks the pool can reach the server.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return apperrors.FromStoreError("ping", err)
	}
	return nil
}

func scanTodo(row pgx.Row) (*repository.Todo, error) {
	todo := &repository.Todo{}
	if err := row.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.CreatedAt); err != nil {
		return nil, err
	}
	todo.CreatedAt = todo.CreatedAt.UTC()
	return todo, nil
}

// CreateTodo inserts a todo and fills in its id and created_at.
func (r *Repository) CreateTodo(ctx context.Context, todo *repository.Todo) error {
	q := fmt.Sprintf(`
		INSERT INTO %s (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, created_at
	`, r.table)

	created, err := scanTodo(r.pool.QueryRow(ctx, q, todo.Title, todo.Description))
	if err != nil {
		return apperrors.FromStoreError("insert todo", err)
	}
	*todo = *created
	return nil
}

// GetTodo retrieves a todo by id.
func (r *Repository) GetTodo(ctx context.Context, id int64) (*repository.Todo, error) {
	q := fmt.Sprintf(`
		SELECT id, title, description, created_at
		FROM %s
		WHERE id = $1
	`, r.table)

	todo, err := scanTodo(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("todo", strconv.FormatInt(id, 10))
		}
		return nil, apperrors.FromStoreError("scan todo", err)
	}
	return todo, nil
}

// ListTodos returns every todo, newest first.
func (r *Repository) ListTodos(ctx context.Context) ([]*repository.Todo, error) {
	q := fmt.Sprintf(`
		SELECT id, title, description, created_at
		FROM %s
		ORDER BY created_at DESC, id DESC
	`, r.table)

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, apperrors.FromStoreError("query todos", err)
	}
	defer rows.Close()

	out := make([]*repository.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, apperrors.FromStoreError("scan todos", err)
		}
		out = append(out, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromStoreError("scan todos", err)
	}
	return out, nil
}

// DeleteTodo removes the todo with id and reports whether one existed.
func (r *Repository) DeleteTodo(ctx context.Context, id int64) (bool, error) {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, apperrors.FromStoreError("delete todo", err)
	}
	return tag.RowsAffected() > 0, nil
}
