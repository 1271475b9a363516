// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/toolbelt/toolbelt/internal/rename"
	"github.com/toolbelt/toolbelt/pkg/types"

	"github.com/spf13/cobra"
)

func newRenameCommand(app *App) *cobra.Command {
	var (
		useRegex bool
		dryRun   bool
	)

	renameCmd := &cobra.Command{
		Use:   "rename <directory> <pattern> <replacement>",
		Short: "Batch-rename the files in a directory",
		Long: `Rename every regular file directly inside a directory by replacing pattern
with replacement in its name. Subdirectories are left alone.

With --regex the pattern is a regular expression and the replacement may use
$1-style group references. With --dry-run nothing is renamed; the command
only reports what it would do.`,
		Example: `  toolbelt rename ./photos IMG_ photo_
  toolbelt rename ./photos '^IMG_(\d+)' 'photo-$1' --regex --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			plan, err := rename.NewPlan(app.Fs, dir, rename.Options{
				Pattern:     args[1],
				Replacement: args[2],
				Regex:       useRegex,
				Logger:      app.logger,
			})
			if err != nil {
				return app.reportError(cmd, err)
			}

			w := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()
			if plan.Scanned == 0 {
				fmt.Fprintln(w, "No files found in directory")
				return nil
			}

			fmt.Fprintf(w, "Found %d files in directory\n", plan.Scanned)
			if dryRun {
				fmt.Fprintln(w)
				fmt.Fprintln(w, warnStyle.Render("DRY RUN - No files will be renamed"))
				fmt.Fprintln(w)
			}

			report := rename.Apply(app.Fs, plan, dryRun)
			for _, o := range report.Outcomes {
				switch {
				case o.Err == nil && dryRun:
					fmt.Fprintf(w, "Would rename: %s → %s\n", o.From, o.To)
				case o.Err == nil:
					fmt.Fprintf(w, "Renamed: %s → %s\n", o.From, o.To)
				case errors.Is(o.Err, rename.ErrTargetExists):
					fmt.Fprintln(stderr, errorLabelStyle.Render("Error:")+" "+o.Err.Error())
				default:
					fmt.Fprintln(stderr, errorLabelStyle.Render("Error processing "+o.From+":")+" "+o.Err.Error())
				}
			}

			verb := "Renamed"
			if dryRun {
				verb = "Would rename"
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, mutedStyle.Render("Summary:"))
			fmt.Fprintf(w, "%s: %d files\n", verb, report.Renamed)
			if report.OK() {
				return nil
			}

			fmt.Fprintf(w, "Errors encountered: %d\n", report.Errors)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: types.ExitFailure}
		},
	}

	renameCmd.Flags().BoolVar(&useRegex, "regex", false, "interpret pattern as a regular expression")
	renameCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be renamed without making changes")

	return renameCmd
}
