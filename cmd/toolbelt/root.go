// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toolbelt/toolbelt/internal/config"
	"github.com/toolbelt/toolbelt/internal/issue"
	"github.com/toolbelt/toolbelt/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// versionString formats the --version output from the ldflags values.
// Unknown commit or date fields are left out.
func versionString(version, commit, built string) string {
	if version == "" || version == "dev" {
		return "dev (built from source)"
	}
	var details []string
	if commit != "" && commit != "unknown" {
		details = append(details, "commit: "+commit)
	}
	if built != "" && built != "unknown" {
		details = append(details, "built: "+built)
	}
	if len(details) == 0 {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, strings.Join(details, ", "))
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	var (
		verbose bool
		cfgFile string
	)

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A set of small file, text, and host utilities",
		Long: headingStyle.Render(config.AppName) + mutedStyle.Render(" - a set of small file, text, and host utilities") + `

` + mutedStyle.Render("Utilities:") + `
  urls      extract http(s) URLs from a text file, keeping one prefix
  csv       sort, filter, or summarise a CSV file
  rename    batch-rename the files in a directory
  sysinfo   report CPU, memory, disk, and network information
  convert   change the letter case of a text file

` + mutedStyle.Render("Examples:") + `
  toolbelt urls notes.txt links.txt https://example.com
  toolbelt csv people.csv sorted.csv --operation sort --columns age
  toolbelt rename ./photos IMG_ photo_ --dry-run
  toolbelt sysinfo --format json --output host.json
  toolbelt convert in.txt out.txt --format title`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := config.LoadOptions{ConfigFilePath: cfgFile}
			if err := app.loadConfig(cmd.Context(), opts, verbose); err != nil {
				app.verbose = verbose
				return app.reportIssue(cmd, err, issue.ConfigLoadFailedId)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and full error chains")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config dir>/toolbelt/config.cue)")

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.AddCommand(
		newURLsCommand(app),
		newCSVCommand(app),
		newRenameCommand(app),
		newSysinfoCommand(app),
		newConvertCommand(app),
		newConfigCommand(app),
	)
	return rootCmd
}

// Execute runs the CLI and exits with the command's exit code.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versionString(Version, Commit, BuildDate)),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		os.Exit(int(types.ExitCodeOf(err)))
	}
}

// errorHandler leaves already-reported failures alone and lets fang style
// the rest (usage errors, unknown commands).
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	if reported(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
