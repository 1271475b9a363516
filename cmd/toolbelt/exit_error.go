// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/toolbelt/toolbelt/pkg/types"
)

// ExitError is returned by a command whose failure has already been printed.
// Execute exits with Code and prints nothing further.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + e.Code.String()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode implements types.ExitCoder.
func (e *ExitError) ExitCode() types.ExitCode { return e.Code }

// reported reports whether err was already shown to the user.
func reported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
