// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/toolbelt/toolbelt/internal/config"
	"github.com/toolbelt/toolbelt/internal/fsutil"
	"github.com/toolbelt/toolbelt/internal/issue"
	"github.com/toolbelt/toolbelt/internal/rename"
	"github.com/toolbelt/toolbelt/internal/sysinfo"
	"github.com/toolbelt/toolbelt/internal/table"
	"github.com/toolbelt/toolbelt/internal/textconv"
	"github.com/toolbelt/toolbelt/pkg/types"

	"github.com/spf13/cobra"
)

// classifyError maps a failure onto the issue catalog. An explicit link
// set with issue.Catalog wins over sentinel matching.
func classifyError(err error) issue.Id {
	if id, ok := issue.IdOf(err); ok {
		return id
	}
	switch {
	case errors.Is(err, fsutil.ErrInputNotFound):
		return issue.InputNotFoundId
	case errors.Is(err, table.ErrEmptyInput), errors.Is(err, table.ErrUnparseable):
		return issue.EmptyInputId
	case errors.Is(err, fsutil.ErrWriteFailed):
		return issue.WriteFailedId
	case errors.Is(err, table.ErrNoColumns),
		errors.Is(err, table.ErrColumnsNotFound),
		errors.Is(err, table.ErrValueRequired),
		errors.Is(err, table.ErrSingleColumn),
		errors.Is(err, table.ErrUnknownOperation),
		errors.Is(err, rename.ErrInvalidPattern),
		errors.Is(err, rename.ErrTargetExists),
		errors.Is(err, textconv.ErrUnknownFormat),
		errors.Is(err, sysinfo.ErrUnknownFormat),
		errors.Is(err, config.ErrInvalidDelimiter),
		errors.Is(err, types.ErrInvalidFilesystemPath):
		return issue.InvalidArgumentId
	default:
		return issue.UnexpectedErrorId
	}
}

// reportError prints err to stderr, adds the catalog entry in verbose mode,
// and returns the ExitError that ends the command.
func (a *App) reportError(cmd *cobra.Command, err error) error {
	return a.reportIssue(cmd, err, classifyError(err))
}

// reportIssue is reportError with an explicit catalog entry. Interrupts are
// reported without the catalog.
func (a *App) reportIssue(cmd *cobra.Command, err error, id issue.Id) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, errorLabelStyle.Render("Error:")+" "+formatErrorForDisplay(err, a.verbose))

	a.logger.Debug("command failed", "issue", id, "err", err)
	if a.verbose && !errors.Is(err, context.Canceled) {
		renderIssue(stderr, id)
	}
	return &ExitError{Code: types.ExitFailure, Err: err}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their own formatting; verbose mode adds the error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("dark")
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// warn prints a non-fatal warning.
func warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render("Warning:")+" "+msg)
}

// success prints a confirmation line.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render(fmt.Sprintf(format, args...)))
}
