package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "000001_create_todos", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS todos")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesTodosTable(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	var id int64
	var createdAt string
	err := db.QueryRow(`INSERT INTO todos (title, description) VALUES ('t', 'd') RETURNING id, created_at`).Scan(&id, &createdAt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, createdAt)

	_, err = db.Exec(`INSERT INTO todos (title) VALUES ('no description')`)
	assert.Error(t, err, "description is NOT NULL")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&count))
	migrations, err := loadMigrations()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected int
	}{
		{"standard", "000001_create_todos.up.sql", 1},
		{"larger", "000042_add_index.up.sql", 42},
		{"no version", "create_todos.up.sql", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractVersion(tt.filename))
		})
	}
}
