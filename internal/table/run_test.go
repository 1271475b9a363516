// SPDX-License-Identifier: MPL-2.0

package table

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte(people), 0o644))
	return fs
}

func strPtr(s string) *string { return &s }

func TestRun_Sort(t *testing.T) {
	t.Parallel()

	fs := newFs(t)
	out := filepath.Join("out", "nested", "sorted.csv")
	res, err := Run(fs, Request{Input: "in.csv", Output: out, Operation: OpSort, Columns: "age"})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Rows)

	data, err := afero.ReadFile(fs, out)
	require.NoError(t, err)
	assert.Equal(t, "name,age,city,active\nbob,25,berlin,false\ndave,25,rome,true\nalice,30,paris,true\ncarol,35,paris,true\n", string(data))
}

func TestRun_FailuresLeaveNoOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "missing column", req: Request{Operation: OpSort, Columns: "age,zip"}, wantErr: ErrColumnsNotFound},
		{name: "no columns", req: Request{Operation: OpSort}, wantErr: ErrNoColumns},
		{name: "filter without value", req: Request{Operation: OpFilter, Columns: "city"}, wantErr: ErrValueRequired},
		{name: "filter on two columns", req: Request{Operation: OpFilter, Columns: "city,age", Value: strPtr("x")}, wantErr: ErrSingleColumn},
		{name: "unknown operation", req: Request{Operation: "pivot", Columns: "age"}, wantErr: ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := newFs(t)
			req := tt.req
			req.Input, req.Output = "in.csv", "out.csv"

			_, err := Run(fs, req)
			require.ErrorIs(t, err, tt.wantErr)

			exists, err := afero.Exists(fs, "out.csv")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestRun_FilterNoMatches(t *testing.T) {
	t.Parallel()

	fs := newFs(t)
	res, err := Run(fs, Request{Input: "in.csv", Output: "out.csv", Operation: OpFilter, Columns: "city", Value: strPtr("oslo")})
	require.NoError(t, err)
	assert.True(t, res.NoMatches)
	assert.Zero(t, res.Rows)

	data, err := afero.ReadFile(fs, "out.csv")
	require.NoError(t, err)
	assert.Equal(t, "name,age,city,active\n", string(data))
}

func TestRun_Stats(t *testing.T) {
	t.Parallel()

	fs := newFs(t)
	res, err := Run(fs, Request{Input: "in.csv", Output: filepath.Join("reports", "stats.txt"), Operation: OpStats})
	require.NoError(t, err)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 4, res.Rows)

	data, err := afero.ReadFile(fs, filepath.Join("reports", "stats.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total Rows: 4\nTotal Columns: 4\n")
	assert.Contains(t, string(data), "- active: bool (Null values: 0)\n")
}

func TestParseOperation(t *testing.T) {
	t.Parallel()

	op, err := ParseOperation("filter")
	require.NoError(t, err)
	assert.Equal(t, OpFilter, op)

	_, err = ParseOperation("Sort")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestRun_HeaderOnlyInput(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "in.csv", []byte("status,name\n"), 0o644))

	res, err := Run(fs, Request{Input: "in.csv", Output: "sorted.csv", Operation: OpSort, Columns: "name"})
	require.NoError(t, err)
	assert.Zero(t, res.Rows)

	res, err = Run(fs, Request{Input: "in.csv", Output: "filtered.csv", Operation: OpFilter, Columns: "status", Value: strPtr("active")})
	require.NoError(t, err)
	assert.True(t, res.NoMatches)

	for _, out := range []string{"sorted.csv", "filtered.csv"} {
		data, err := afero.ReadFile(fs, out)
		require.NoError(t, err)
		assert.Equal(t, "status,name\n", string(data), out)
	}

	res, err = Run(fs, Request{Input: "in.csv", Operation: OpStats})
	require.NoError(t, err)
	require.NotNil(t, res.Stats)
	assert.Zero(t, res.Stats.Rows)
	assert.Len(t, res.Stats.Columns, 2)
}
