// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidFilesystemPath is wrapped by every FilesystemPath validation error.
var ErrInvalidFilesystemPath = errors.New("invalid filesystem path")

// FilesystemPath is a user-supplied input or output path. The zero value is
// invalid.
type FilesystemPath string

func (p FilesystemPath) String() string { return string(p) }

// Validate rejects empty and whitespace-only paths.
func (p FilesystemPath) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return fmt.Errorf("%w %q: must be non-empty", ErrInvalidFilesystemPath, string(p))
	}
	return nil
}

// Dir returns the parent directory, or "" when p has no directory part.
func (p FilesystemPath) Dir() FilesystemPath {
	dir := filepath.Dir(string(p))
	if dir == "." {
		return ""
	}
	return FilesystemPath(dir)
}

// IsBareName reports whether p is a single path element: non-empty, not
// "." or "..", and free of both '/' and the host separator.
func (p FilesystemPath) IsBareName() bool {
	s := string(p)
	switch s {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsRune(s, '/') && !strings.ContainsRune(s, filepath.Separator)
}
