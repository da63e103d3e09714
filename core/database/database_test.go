package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "hideout",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg, zap.NewNop())
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("SQLite Creates File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.db")
		cfg := Config{Driver: DriverSQLite, Path: path}

		db, err := Connect(cfg, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.NoError(t, db.Exec("CREATE TABLE smoke (id INTEGER)").Error)
	})

	t.Run("SQLite Self-Heals Corrupted File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.db")
		// Not a sqlite database
		require.NoError(t, os.WriteFile(path, []byte("definitely not sqlite"), 0o644))

		db, err := Connect(Config{Driver: DriverSQLite, Path: path}, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, db)

		// Recreated empty and writable
		assert.NoError(t, db.Exec("CREATE TABLE smoke (id INTEGER)").Error)
	})
}
