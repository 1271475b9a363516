// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	name?:  string
	count?: int & >=0
	tags?: [...string]
}
`

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "test.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("some error")
		err := FormatError(originalErr, "test.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "test.cue") || !strings.Contains(err.Error(), "some error") {
			t.Errorf("unexpected message: %v", err)
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected wrapped error to match original")
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			t.Errorf("plain error should not become a ValidationError: %+v", ve)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: nil, expected: ""},
		{name: "single element", path: []string{"ui"}, expected: "ui"},
		{name: "nested path", path: []string{"csv", "delimiter"}, expected: "csv.delimiter"},
		{name: "array index", path: []string{"csv", "null_values", "0"}, expected: "csv.null_values[0]"},
		{name: "leading number is not an index", path: []string{"0", "x"}, expected: "0.x"},
		{name: "definition selector dropped", path: []string{"#Config", "csv", "delimiter"}, expected: "csv.delimiter"},
		{name: "definition only", path: []string{"#Config"}, expected: ""},
		{name: "index after definition", path: []string{"#Config", "tags", "1"}, expected: "tags[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	single := &ValidationError{File: "c.cue", Fields: []FieldError{{Path: "csv.delimiter", Message: "invalid value"}}}
	if got, want := single.Error(), "c.cue: csv.delimiter: invalid value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	multi := &ValidationError{File: "c.cue", Fields: []FieldError{
		{Path: "ui.verbose", Message: "conflicting values"},
		{Message: "expected operand"},
	}}
	want := "c.cue: validation failed:\n  ui.verbose: conflicting values\n  expected operand"
	if got := multi.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize([]byte("abc"), 3, "a.cue"); err != nil {
		t.Errorf("expected no error at limit, got %v", err)
	}
	if err := CheckFileSize([]byte("abcd"), 3, "a.cue"); err == nil {
		t.Error("expected error above limit")
	}
}

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	t.Run("valid data decodes", func(t *testing.T) {
		t.Parallel()

		values, err := DecodeMap(testSchema, "#Config", []byte(`name: "x", count: 2`), "test.cue")
		if err != nil {
			t.Fatalf("DecodeMap() error = %v", err)
		}
		if values["name"] != "x" {
			t.Errorf("name = %v, want x", values["name"])
		}
	})

	t.Run("schema violation names the field", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeMap(testSchema, "#Config", []byte(`count: -1`), "test.cue")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "count") {
			t.Errorf("error should mention field path, got: %v", err)
		}
	})

	t.Run("diagnostics are itemized", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeMap(testSchema, "#Config", []byte(`count: -1`), "test.cue")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationError, got %T: %v", err, err)
		}
		if ve.File != "test.cue" || len(ve.Fields) == 0 {
			t.Fatalf("unexpected ValidationError: %+v", ve)
		}
		if ve.Fields[0].Path != "count" {
			t.Errorf("Fields[0].Path = %q, want count", ve.Fields[0].Path)
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := DecodeMap(testSchema, "#Config", []byte(`bogus: true`), "test.cue"); err == nil {
			t.Fatal("expected closed definition to reject unknown field")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		if _, err := DecodeMap(testSchema, "#Config", []byte(`name: `), "test.cue"); err == nil {
			t.Fatal("expected syntax error")
		}
	})
}
