// Package testutil provides common test helpers for the pyactivate project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempProject creates a temporary directory containing the given entries and
// returns its path. Entries ending in "/" are created as directories, all
// others as empty files. Parent directories are created as needed.
func TempProject(t *testing.T, entries ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, entry := range entries {
		path := filepath.Join(dir, entry)
		if strings.HasSuffix(entry, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("TempProject: mkdir %s failed: %v", entry, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("TempProject: mkdir for %s failed: %v", entry, err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatalf("TempProject: write %s failed: %v", entry, err)
		}
	}

	return dir
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("WriteFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: write failed: %v", err)
	}

	return path
}

// WriteCondaEnv writes an environment.yml declaring the given name in dir.
func WriteCondaEnv(t *testing.T, dir, name string) string {
	t.Helper()

	content := "name: " + name + `
channels:
  - conda-forge
dependencies:
  - python=3.11
`
	return WriteFile(t, dir, "environment.yml", content)
}

// WriteLinkedEnv writes a raw .linked_env file in dir.
func WriteLinkedEnv(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, dir, ".linked_env", content)
}

// ReadLinkedEnv reads the .linked_env file in dir.
func ReadLinkedEnv(t *testing.T, dir string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, ".linked_env"))
	if err != nil {
		t.Fatalf("ReadLinkedEnv: read failed: %v", err)
	}

	return string(data)
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

// ClearActiveEnv unsets the variables a shell exports for an active
// virtualenv or conda environment, for the duration of the test.
func ClearActiveEnv(t *testing.T) {
	t.Helper()

	t.Setenv("VIRTUAL_ENV", "")
	t.Setenv("CONDA_DEFAULT_ENV", "")
}
