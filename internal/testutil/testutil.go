// Package testutil provides common test helpers for the starshift project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempPresetDir creates a temporary preset directory containing the given
// file names (e.g. "minimal.toml", "notes.txt") and returns its path.
// Each file gets a small placeholder body; presets are never parsed.
func TempPresetDir(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range files {
		WritePreset(t, dir, name)
	}
	return dir
}

// WritePreset writes a single file into dir.
func WritePreset(t *testing.T, dir, fileName string) string {
	t.Helper()

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte("add_newline = false\n"), 0600); err != nil {
		t.Fatalf("WritePreset: write failed: %v", err)
	}
	return path
}

// TempHome creates a temporary home directory with the standard preset
// directory (.config/starship_presets) populated with files, and returns the
// home path and preset directory path. HOME itself is left untouched so callers
// can pass the path through preset.MapEnv and keep tests parallel.
func TempHome(t *testing.T, files ...string) (home, presetDir string) {
	t.Helper()

	home = t.TempDir()
	presetDir = filepath.Join(home, ".config", "starship_presets")
	if err := os.MkdirAll(presetDir, 0700); err != nil {
		t.Fatalf("TempHome: mkdir failed: %v", err)
	}
	for _, name := range files {
		WritePreset(t, presetDir, name)
	}
	return home, presetDir
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}
