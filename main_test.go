// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// binaryPath is the toolbelt binary built for the script tests.
var binaryPath string

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	binDir, err := os.MkdirTemp("", "toolbelt-bin-")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create bin directory:", err)
		return 1
	}
	defer os.RemoveAll(binDir)

	binaryName := "toolbelt"
	if runtime.GOOS == "windows" {
		binaryName = "toolbelt.exe"
	}
	binaryPath = filepath.Join(binDir, binaryName)

	build := exec.CommandContext(context.Background(), "go", "build", "-o", binaryPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to build toolbelt:", err)
		return 1
	}

	return m.Run()
}

// TestScripts runs the CLI scripts in testdata/script.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("PATH", filepath.Dir(binaryPath)+string(os.PathListSeparator)+env.Getenv("PATH"))
			// Keep the user's configuration out of the scripts.
			env.Setenv("HOME", env.WorkDir)
			env.Setenv("USERPROFILE", env.WorkDir)
			env.Setenv("APPDATA", filepath.Join(env.WorkDir, "appdata"))
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(env.WorkDir, "xdg"))
			env.Setenv("NO_COLOR", "1")
			return nil
		},
		ContinueOnError: true,
	})
}
