// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	cueerrors "cuelang.org/go/cue/errors"
)

type (
	// FieldError is one CUE diagnostic. Path is in JSON-path notation
	// ("csv.null_values[0]") and empty for file-level problems.
	FieldError struct {
		Path    string
		Message string
	}

	// ValidationError collects every diagnostic CUE reported for File.
	ValidationError struct {
		File   string
		Fields []FieldError
	}
)

func (f FieldError) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

// Error renders a single diagnostic as "<file>: <path>: <message>" and
// several as an indented list under "<file>: validation failed:".
func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.File + ": " + e.Fields[0].String()
	}
	lines := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		lines[i] = f.String()
	}
	return e.File + ": validation failed:\n  " + strings.Join(lines, "\n  ")
}

// FormatError converts a CUE error into a *ValidationError for filePath.
// Errors CUE does not itemize are wrapped with the file name instead.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	// cueerrors.Errors promotes any error to a one-item list, so plain
	// errors have to be caught before itemizing.
	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	items := cueerrors.Errors(err)
	ve := &ValidationError{File: filePath, Fields: make([]FieldError, 0, len(items))}
	for _, item := range items {
		selectors := cueerrors.Path(item)
		path := formatPath(selectors)
		msg := item.Error()
		// CUE sometimes repeats the path at the start of the message.
		for _, prefix := range []string{strings.Join(selectors, "."), path} {
			if prefix == "" {
				continue
			}
			if rest, ok := strings.CutPrefix(msg, prefix+":"); ok {
				msg = strings.TrimSpace(rest)
				break
			}
		}
		ve.Fields = append(ve.Fields, FieldError{Path: path, Message: msg})
	}
	return ve
}

// formatPath joins CUE path selectors, rendering numeric selectors after the
// first as list indexes. Leading definition selectors ("#Config") are dropped.
func formatPath(selectors []string) string {
	for len(selectors) > 0 && strings.HasPrefix(selectors[0], "#") {
		selectors = selectors[1:]
	}
	var b strings.Builder
	for i, sel := range selectors {
		switch {
		case i == 0:
			b.WriteString(sel)
		case isIndex(sel):
			b.WriteString("[" + sel + "]")
		default:
			b.WriteString("." + sel)
		}
	}
	return b.String()
}

func isIndex(sel string) bool {
	return sel != "" && strings.IndexFunc(sel, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
