// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/toolbelt/toolbelt/internal/config"
	"github.com/toolbelt/toolbelt/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `toolbelt config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage toolbelt configuration",
		Long: `Manage toolbelt configuration.

Configuration is read from config.cue in:
  - Linux: ~/.config/toolbelt/ (or $XDG_CONFIG_HOME/toolbelt/)
  - macOS: ~/Library/Application Support/toolbelt/
  - Windows: %APPDATA%\toolbelt\
falling back to ./config.cue. Values can be overridden with TOOLBELT_*
environment variables, also read from a .env file in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.OutOrStdout(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return app.reportIssue(cmd, err, issue.ConfigLoadFailedId)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
			fmt.Fprintf(w, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig(app.loadOpts)
			if err != nil {
				return app.reportIssue(cmd, err, issue.WriteFailedId)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration file at %s\n", okStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.settings()))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, app *App) error {
	cfg := app.settings()

	fmt.Fprintln(w, headingStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if app.source == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), mutedStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), app.source)
	}
	fmt.Fprintln(w)

	quoted := make([]string, len(cfg.CSV.NullValues))
	for i, nv := range cfg.CSV.NullValues {
		quoted[i] = strconv.Quote(nv)
	}

	rows := []struct{ key, value string }{
		{"ui.verbose", strconv.FormatBool(cfg.UI.Verbose)},
		{"csv.delimiter", strconv.Quote(cfg.CSV.Delimiter)},
		{"csv.null_values", "[" + strings.Join(quoted, ", ") + "]"},
		{"text.default_format", cfg.Text.DefaultFormat.String()},
		{"sysinfo.default_format", cfg.Sysinfo.DefaultFormat.String()},
		{"sysinfo.cpu_sample_ms", strconv.Itoa(cfg.Sysinfo.CPUSampleMs)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render(r.key), valueStyle.Render(r.value))
	}
	return nil
}
