// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFilesystemPathValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   FilesystemPath
		wantErr bool
	}{
		{name: "relative file", value: "data.csv"},
		{name: "nested path", value: FilesystemPath(filepath.Join("out", "report.txt"))},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "  \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilesystemPath(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error does not wrap ErrInvalidFilesystemPath: %v", err)
			}
		})
	}
}

func TestFilesystemPathDir(t *testing.T) {
	t.Parallel()

	p := FilesystemPath(filepath.Join("out", "nested", "urls.txt"))
	if got, want := p.Dir(), FilesystemPath(filepath.Join("out", "nested")); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got := FilesystemPath("urls.txt").Dir(); got != "" {
		t.Errorf("Dir() of bare name = %q, want empty", got)
	}
}

func TestFilesystemPathIsBareName(t *testing.T) {
	t.Parallel()

	tests := map[FilesystemPath]bool{
		"report.txt":    true,
		".hidden":       true,
		"":              false,
		".":             false,
		"..":            false,
		"sub/file.txt":  false,
		"../escape.txt": false,
	}
	for p, want := range tests {
		if got := p.IsBareName(); got != want {
			t.Errorf("FilesystemPath(%q).IsBareName() = %v, want %v", p, got, want)
		}
	}
}
