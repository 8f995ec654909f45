package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "draws.db")
	db, err := OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(path))

	version, dirty, err := SchemaVersion(path)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(2), version)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM draws`).Scan(&n))
	require.Zero(t, n)
}

func TestSchemaVersionOnFreshDatabase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fresh.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, dirty, err := SchemaVersion(path)
	require.NoError(t, err)
	require.False(t, dirty)
	require.Zero(t, version)
}
