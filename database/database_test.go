package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_RunsMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	db, err := Initialize(dbPath)
	require.NoError(t, err)

	applied, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_auth_attempts"}, applied)
	require.NoError(t, db.Close())

	// reopening must not re-apply
	db, err = Initialize(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestLoadMigrations_Sorted(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_b.sql": {Data: []byte("SELECT 2;")},
		"migrations/001_a.sql": {Data: []byte("SELECT 1;")},
		"migrations/notes.txt": {Data: []byte("ignored")},
	}

	migrations, err := loadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "001_a", migrations[0].Version)
	assert.Equal(t, "002_b.sql", migrations[1].Filename)
}

func TestLoadMigrations_Empty(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{})
	assert.Error(t, err)
}
