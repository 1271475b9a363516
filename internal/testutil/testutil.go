// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return restoreEnv(t, key, originalValue, hadValue)
}

// MustUnsetenv unsets the environment variable key.
// It returns a cleanup function that restores the original value (if any).
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return restoreEnv(t, key, originalValue, hadValue)
}

func restoreEnv(t testing.TB, key, value string, had bool) func() {
	return func() {
		if had {
			if err := os.Setenv(key, value); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
			return
		}
		if err := os.Unsetenv(key); err != nil {
			t.Errorf("failed to unset env %s: %v", key, err)
		}
	}
}

// WriteFiles creates each path in files with the given content, creating
// parent directories as needed.
func WriteFiles(t testing.TB, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// ReadFile returns the content of path. The test fails if it cannot be read.
func ReadFile(t testing.TB, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// ListDir returns the sorted names of the entries in dir.
func ListDir(t testing.TB, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("failed to read directory %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
