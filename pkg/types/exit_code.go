// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is returned when a utility completed without errors.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned for every reported failure, whatever its kind.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is returned by ExitCode.Validate for codes a process
// cannot report.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status in the POSIX range 0-255.
	ExitCode int

	// ExitCoder is implemented by errors that carry their own exit status.
	ExitCoder interface {
		ExitCode() ExitCode
	}
)

// ExitCodeOf maps err to the status the process should exit with:
// ExitSuccess for nil, the carried code for an ExitCoder anywhere in the
// chain, and ExitFailure otherwise. Out-of-range carried codes collapse
// to ExitFailure.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code.Validate() == nil {
			return code
		}
	}
	return ExitFailure
}

// Validate rejects codes outside 0-255.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return fmt.Errorf("%w: %d is outside 0-255", ErrInvalidExitCode, int(c))
	}
	return nil
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
