package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg := store.Get()
	assert.Equal(t, filepath.Join(dir, "data.db"), cfg.Database)
	assert.Equal(t, DefaultTable, cfg.Table)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestStore_SetAndReload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)

	cfg := store.Get()
	cfg.Database = "/tmp/other.db"
	cfg.Table = "cache"
	cfg.Verbose = true
	require.NoError(t, store.Set(cfg))

	// A fresh store sees the persisted values.
	reloaded, err := NewStore(dir)
	require.NoError(t, err)
	got := reloaded.Get()
	assert.Equal(t, "/tmp/other.db", got.Database)
	assert.Equal(t, "cache", got.Table)
	assert.True(t, got.Verbose)
}

func TestStore_PartialFile(t *testing.T) {
	dir := t.TempDir()

	// Only the database key present; table falls back to the default.
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("database = \"/tmp/x.db\"\n"), 0600)
	require.NoError(t, err)

	store, err := NewStore(dir)
	require.NoError(t, err)
	cfg := store.Get()
	assert.Equal(t, "/tmp/x.db", cfg.Database)
	assert.Equal(t, DefaultTable, cfg.Table)
}

func TestStore_InvalidFile(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not valid toml ["), 0600)
	require.NoError(t, err)

	_, err = NewStore(dir)
	assert.Error(t, err)
}

func TestStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(store.Get()))

	fi, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}
