// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"testing"
)

type codedError struct{ code ExitCode }

func (e codedError) Error() string      { return "coded " + e.code.String() }
func (e codedError) ExitCode() ExitCode { return e.code }

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
		{name: "carried code", err: codedError{code: 3}, want: 3},
		{name: "wrapped carried code", err: fmt.Errorf("outer: %w", codedError{code: 7}), want: 7},
		{name: "out of range collapses", err: codedError{code: 300}, want: ExitFailure},
		{name: "negative collapses", err: codedError{code: -2}, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	for _, code := range []ExitCode{ExitSuccess, ExitFailure, 255} {
		if err := code.Validate(); err != nil {
			t.Errorf("ExitCode(%d).Validate() = %v, want nil", code, err)
		}
	}
	for _, code := range []ExitCode{-1, 256} {
		if err := code.Validate(); !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("ExitCode(%d).Validate() = %v, want ErrInvalidExitCode", code, err)
		}
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() || ExitFailure.IsSuccess() {
		t.Error("IsSuccess() misclassifies ExitSuccess/ExitFailure")
	}
	if got := ExitFailure.String(); got != "1" {
		t.Errorf("ExitFailure.String() = %q, want %q", got, "1")
	}
}
