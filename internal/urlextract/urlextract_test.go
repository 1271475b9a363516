// SPDX-License-Identifier: MPL-2.0

package urlextract

import (
	"path/filepath"
	"testing"

	"github.com/toolbelt/toolbelt/internal/fsutil"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix keeps only matching host",
			text:   "see https://a.com/x and https://b.com/y",
			prefix: "https://a.com",
			want:   []string{"https://a.com/x"},
		},
		{
			name:   "empty prefix keeps all",
			text:   "http://one.io https://two.io/p?q=1",
			prefix: "",
			want:   []string{"http://one.io", "https://two.io/p?q=1"},
		},
		{
			name:   "stops at quotes and angle brackets",
			text:   `<a href="https://a.com/page">x</a> <https://a.com/other>`,
			prefix: "https://a.com",
			want:   []string{"https://a.com/page", "https://a.com/other"},
		},
		{
			name:   "scheme is case sensitive",
			text:   "HTTPS://a.com/x ftp://a.com/y",
			prefix: "",
			want:   []string{},
		},
		{
			name:   "order and duplicates preserved",
			text:   "https://a.com/2\nhttps://a.com/1\nhttps://a.com/2",
			prefix: "https://a.com/",
			want:   []string{"https://a.com/2", "https://a.com/1", "https://a.com/2"},
		},
		{
			name:   "http prefix does not match https",
			text:   "https://a.com",
			prefix: "http://",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Extract(tt.text, tt.prefix))
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "page.html",
		[]byte(`<a href="https://docs.go.dev/a">a</a> https://example.com/b https://docs.go.dev/c`), 0o644))

	out := filepath.Join("results", "urls.txt")
	res, err := Run(fs, "page.html", out, "https://docs.go.dev")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Found)
	assert.Equal(t, []string{"https://docs.go.dev/a", "https://docs.go.dev/c"}, res.URLs)

	got, err := afero.ReadFile(fs, out)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.go.dev/a\nhttps://docs.go.dev/c\n", string(got))
}

func TestRun_NoMatchesWritesEmptyFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.txt", []byte("no links here"), 0o644))

	res, err := Run(fs, "in.txt", "out.txt", "https://")
	require.NoError(t, err)
	assert.Zero(t, res.Found)

	got, err := afero.ReadFile(fs, "out.txt")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	_, err := Run(fs, "missing.txt", "out.txt", "https://")
	require.ErrorIs(t, err, fsutil.ErrInputNotFound)

	exists, _ := afero.Exists(fs, "out.txt")
	assert.False(t, exists)
}
