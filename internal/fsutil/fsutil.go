// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppDir resolves the per-user data directory for the named application:
// the OS user config directory joined with the lowercased application name.
// On Unix this is typically ~/.config/<app>, on macOS
// ~/Library/Application Support/<app>, on Windows %AppData%\<app>.
func AppDir(app string) (string, error) {
	if app == "" {
		panic("app name must not be empty")
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, strings.ToLower(app)), nil
}

// EnsureDir creates the directory and any missing parents. It is a no-op
// when the directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %q: %w", path, err)
	}
	return nil
}
