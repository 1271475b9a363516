// SPDX-License-Identifier: MPL-2.0

// Package fsutil holds the input checks and output writes shared by the
// file-based utilities. Every function takes an afero.Fs so tests can run
// against an in-memory filesystem.
package fsutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/toolbelt/toolbelt/pkg/types"

	"github.com/spf13/afero"
)

var (
	// ErrInputNotFound is the sentinel error wrapped by NotFoundError.
	ErrInputNotFound = errors.New("input not found")
	// ErrWriteFailed is wrapped when an output file could not be written.
	ErrWriteFailed = errors.New("failed to write")
)

// NotFoundError is returned when an input path is missing or is not the kind
// of entry the caller needs.
type NotFoundError struct {
	// What is "Input file" or "Directory".
	What string
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.What, e.Path)
}

// Unwrap returns ErrInputNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrInputNotFound }

// RequireFile returns an error wrapping ErrInputNotFound unless path names a
// regular file.
func RequireFile(fs afero.Fs, path string) error {
	if err := types.FilesystemPath(path).Validate(); err != nil {
		return err
	}
	info, err := fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &NotFoundError{What: "Input file", Path: path}
	}
	return nil
}

// RequireDir returns an error wrapping ErrInputNotFound unless path names a
// directory.
func RequireDir(fs afero.Fs, path string) error {
	if err := types.FilesystemPath(path).Validate(); err != nil {
		return err
	}
	ok, err := afero.IsDir(fs, path)
	if err != nil || !ok {
		return &NotFoundError{What: "Directory", Path: path}
	}
	return nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(fs afero.Fs, path string) error {
	dir := types.FilesystemPath(path).Dir().String()
	if dir == "" {
		return nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// DefaultFileMode is the permission given to newly written output files.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic streams write's output into a temporary file next to path and
// renames it into place. On any failure the temporary file is removed and
// path is left untouched.
func WriteAtomic(fs afero.Fs, path string, write func(w io.Writer) error) (err error) {
	if err := types.FilesystemPath(path).Validate(); err != nil {
		return err
	}
	if err := EnsureParentDir(fs, path); err != nil {
		return err
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = fs.Remove(tmpName) // best effort; the original error matters more
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}

	// Temp files are created 0600; give the result the mode a plain create
	// would, or keep the mode of the file being replaced.
	mode := DefaultFileMode
	if info, statErr := fs.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err := fs.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}

	if err := fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
	}
	renamed = true
	return nil
}

// WriteFileAtomic writes data to path via WriteAtomic.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	return WriteAtomic(fs, path, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWriteFailed, path, err)
		}
		return nil
	})
}
