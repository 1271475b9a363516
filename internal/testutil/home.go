// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/toolbelt/toolbelt/pkg/platform"
)

// HomeEnvVar names the variable os.UserHomeDir reads on this platform.
func HomeEnvVar() string {
	if runtime.GOOS == platform.Windows {
		return "USERPROFILE"
	}
	return "HOME"
}

// SetHomeDir points the home directory at dir and returns a restore func.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()
	return MustSetenv(t, HomeEnvVar(), dir)
}

// SetConfigHome makes platform.ConfigBase resolve under dir. On macOS the
// base is derived from HOME, so the result is dir/Library/Application Support.
func SetConfigHome(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case platform.Windows:
		return MustSetenv(t, "APPDATA", dir)
	case platform.Darwin:
		return SetHomeDir(t, dir)
	default:
		return MustSetenv(t, "XDG_CONFIG_HOME", dir)
	}
}
