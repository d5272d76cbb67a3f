package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := AppDir("WorkTimer")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, "worktimer"), "app dir %q should end with the lowercased app name", dir)
}

func TestAppDir_EmptyNamePanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = AppDir("") })
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDir(path))
}
