package postgresdb

import (
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrazmi/todolist/schema"
	"github.com/stretchr/testify/require"
)

func TestHandlePgError(t *testing.T) {
	require.NoError(t, HandlePgError(nil))
	require.ErrorIs(t, HandlePgError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), ErrDBNotFound)
	require.ErrorIs(t, HandlePgError(&pgconn.PgError{Code: uniqueViolation}), ErrDBDuplicatedEntry)
	require.ErrorIs(t, HandlePgError(&pgconn.PgError{Code: undefinedTable}), ErrUndefinedTable)

	other := errors.New("connection reset")
	require.Equal(t, other, HandlePgError(other))
}

func TestPrettyPrintSQL(t *testing.T) {
	sql := `
		SELECT id, title
		FROM tasks
		WHERE id = ( @id )
	`
	require.Equal(t, "SELECT id, title FROM tasks WHERE id =(@id)", prettyPrintSQL(sql))
}

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"pgmigrations/002_b.sql":   {Data: []byte("SELECT 2;")},
		"pgmigrations/001_a.sql":   {Data: []byte("SELECT 1;")},
		"pgmigrations/README.md":   {Data: []byte("notes")},
		"pgmigrations/010_c.sql":   {Data: []byte("SELECT 10;")},
		"elsewhere/000_ignore.sql": {Data: []byte("SELECT 0;")},
	}

	files, err := migrationFiles(fsys, "pgmigrations")
	require.NoError(t, err)
	require.Equal(t, []string{"001_a.sql", "002_b.sql", "010_c.sql"}, files)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := migrationFiles(schema.MigrationsFS, "pgmigrations")
	require.NoError(t, err)
	require.Contains(t, files, "001_create_tasks.sql")
}

func TestChecksumStable(t *testing.T) {
	a := checksum([]byte("CREATE TABLE tasks ();"))
	require.Len(t, a, 64)
	require.Equal(t, a, checksum([]byte("CREATE TABLE tasks ();")))
	require.NotEqual(t, a, checksum([]byte("CREATE TABLE tasks (id INT);")))
}
