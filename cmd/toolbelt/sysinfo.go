// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"time"

	"github.com/toolbelt/toolbelt/internal/sysinfo"

	"github.com/spf13/cobra"
)

func newSysinfoCommand(app *App) *cobra.Command {
	var (
		format string
		output string
	)

	sysCmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Report CPU, memory, disk, and network information",
		Long: `Collect a snapshot of host metrics and print it as a text report or JSON.

Metrics the platform cannot provide (CPU frequency, usage of a single
partition) are reported as unavailable instead of failing the command.`,
		Example: `  toolbelt sysinfo
  toolbelt sysinfo --format json --output reports/host.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.settings().Sysinfo
			if !cmd.Flags().Changed("format") {
				format = string(settings.DefaultFormat)
			}
			f, err := sysinfo.ParseFormat(format)
			if err != nil {
				return app.reportError(cmd, err)
			}

			snap, err := sysinfo.Collect(cmd.Context(), app.Collector, sysinfo.Options{
				SampleInterval: time.Duration(settings.CPUSampleMs) * time.Millisecond,
				Now:            app.Now,
				Logger:         app.logger,
			})
			if err != nil {
				return app.reportError(cmd, err)
			}

			w := cmd.OutOrStdout()
			if output == "" {
				if err := sysinfo.Render(w, snap, f); err != nil {
					return app.reportError(cmd, err)
				}
				return nil
			}

			if err := sysinfo.WriteFile(app.Fs, output, snap, f); err != nil {
				return app.reportError(cmd, err)
			}
			success(w, "System information saved to: %s", output)
			return nil
		},
	}

	sysCmd.Flags().StringVar(&format, "format", "", "output format: text or json (default from sysinfo.default_format)")
	sysCmd.Flags().StringVar(&output, "output", "", "write the report to this file instead of stdout")
	_ = sysCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(sysinfo.FormatText), string(sysinfo.FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})

	return sysCmd
}
