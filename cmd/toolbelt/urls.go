// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/toolbelt/toolbelt/internal/urlextract"

	"github.com/spf13/cobra"
)

func newURLsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "urls <input-file> <output-file> <url-prefix>",
		Short: "Extract URLs starting with a prefix from a text file",
		Long: `Extract every http(s) URL from a text file and save those starting with
the given prefix to the output file, one per line.`,
		Example: `  toolbelt urls notes.txt links.txt https://example.com`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output, prefix := args[0], args[1], args[2]

			res, err := urlextract.Run(app.Fs, input, output, prefix)
			if err != nil {
				return app.reportError(cmd, err)
			}
			app.logger.Debug("extracted urls", "input", input, "found", res.Found, "kept", len(res.URLs))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Found %d URLs\n", res.Found)
			fmt.Fprintf(w, "Filtered %d URLs starting with '%s'\n", len(res.URLs), prefix)
			success(w, "Results saved to: %s", output)
			return nil
		},
	}
}
