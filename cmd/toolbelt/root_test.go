// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/fang"
)

func TestVersionString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"release build", "v1.2.3", "abc1234", "2025-06-15T10:00:00Z", "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"},
		{"dev build", "dev", "unknown", "unknown", "dev (built from source)"},
		{"empty version", "", "abc1234", "", "dev (built from source)"},
		{"commit only", "v0.9.0", "abc1234", "unknown", "v0.9.0 (commit: abc1234)"},
		{"no details", "v0.9.0", "unknown", "", "v0.9.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := versionString(tt.version, tt.commit, tt.date); got != tt.want {
				t.Errorf("versionString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommandTree(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(NewApp(Dependencies{Config: stubConfig{}, Collector: stubHost{}}))
	for _, name := range []string{"config", "convert", "csv", "rename", "sysinfo", "urls"} {
		sub, _, err := root.Find([]string{name})
		if err != nil || sub == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing --%s persistent flag", flag)
		}
	}
}

func TestErrorHandler_SkipsReportedFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	errorHandler(&buf, fang.Styles{}, &ExitError{Code: 1, Err: errors.New("already shown")})
	if buf.Len() != 0 {
		t.Errorf("errorHandler printed %q for a reported failure", buf.String())
	}
	if !reported(&ExitError{Code: 1}) || reported(errors.New("fresh")) {
		t.Error("reported() misclassifies errors")
	}
}
