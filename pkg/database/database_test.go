package database

import (
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pragmaForeignKeys(t *testing.T, opts ...Option) int {
	t.Helper()

	db, err := New(append(opts, WithMaxOpenConns(1))...)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	return enabled
}

func TestNewForeignKeys(t *testing.T) {
	t.Run("enabled by default", func(t *testing.T) {
		assert.Equal(t, 1, pragmaForeignKeys(t))
	})

	t.Run("can be switched off", func(t *testing.T) {
		assert.Equal(t, 0, pragmaForeignKeys(t, WithForeignKeys(false)))
	})

	t.Run("dsn with existing params keeps them", func(t *testing.T) {
		enabled := pragmaForeignKeys(t, WithDataSource("file::memory:?cache=shared"))
		assert.Equal(t, 1, enabled)
	})
}

func TestNewRejectsEmptyOptions(t *testing.T) {
	_, err := New(WithDriver(""))
	assert.Error(t, err)

	_, err = New(WithDataSource(""))
	assert.Error(t, err)
}
