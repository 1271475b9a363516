// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/toolbelt/toolbelt/internal/textconv"

	"github.com/spf13/cobra"
)

func newConvertCommand(app *App) *cobra.Command {
	var format string

	convertCmd := &cobra.Command{
		Use:   "convert <input-file> <output-file>",
		Short: "Change the letter case of a text file",
		Long: `Convert the text in a file to another letter case and save the result.

Formats:
  upper        ALL UPPER CASE
  lower        all lower case
  title        Every Word Capitalised
  sentence     First letter of each sentence capitalised
  alternating  AlTeRnAtInG cAsE`,
		Example: `  toolbelt convert in.txt out.txt --format title`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = string(app.settings().Text.DefaultFormat)
			}
			f, err := textconv.ParseFormat(format)
			if err != nil {
				return app.reportError(cmd, err)
			}

			input, output := args[0], args[1]
			if err := textconv.Run(app.Fs, input, output, f); err != nil {
				return app.reportError(cmd, err)
			}
			app.logger.Debug("converted text", "input", input, "format", f)

			w := cmd.OutOrStdout()
			success(w, "Successfully converted text to %s format", f)
			fmt.Fprintf(w, "Output saved to: %s\n", output)
			return nil
		},
	}

	formats := make([]string, 0, len(textconv.Formats()))
	for _, f := range textconv.Formats() {
		formats = append(formats, string(f))
	}
	convertCmd.Flags().StringVar(&format, "format", "", "case format (default from text.default_format)")
	_ = convertCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	return convertCmd
}
