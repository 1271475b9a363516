// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError pairs a failure with what was being attempted and what
	// the user can do about it. Build one with Wrap:
	//
	//	return issue.Wrap(err, "load configuration",
	//		issue.Resource(path),
	//		issue.Suggest("Check that the file contains valid CUE syntax"),
	//		issue.Catalog(issue.ConfigLoadFailedId))
	ActionableError struct {
		// Operation is a verb phrase: "load configuration", "write output".
		Operation   string
		Resource    string
		Suggestions []string
		// Id links the failure to a catalog entry; zero means unclassified.
		Id    Id
		Cause error
	}

	// Option adds context to an ActionableError built by Wrap.
	Option func(*ActionableError)
)

// Resource names the file or directory involved.
func Resource(path string) Option {
	return func(e *ActionableError) { e.Resource = path }
}

// Suggest appends remediation hints, shown in order.
func Suggest(hints ...string) Option {
	return func(e *ActionableError) { e.Suggestions = append(e.Suggestions, hints...) }
}

// Catalog links the error to a catalog entry.
func Catalog(id Id) Option {
	return func(e *ActionableError) { e.Id = id }
}

// Wrap returns cause wrapped in an ActionableError, or nil when cause is nil.
func Wrap(cause error, operation string, opts ...Option) error {
	if cause == nil {
		return nil
	}
	e := &ActionableError{Operation: operation, Cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IdOf returns the catalog entry linked to the outermost ActionableError in
// err's chain that carries one.
func IdOf(err error) (Id, bool) {
	for err != nil {
		var ae *ActionableError
		if !errors.As(err, &ae) {
			return 0, false
		}
		if ae.Id != 0 {
			return ae.Id, true
		}
		err = ae.Cause
	}
	return 0, false
}

// Error returns "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders Error followed by bulleted suggestions. verbose appends
// the numbered unwrap chain of the cause.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range e.Suggestions {
			b.WriteString("\n  • " + s)
		}
	}

	if verbose && e.Cause != nil {
		b.WriteString("\n\nError chain:")
		n := 0
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			n++
			fmt.Fprintf(&b, "\n  %d. %s", n, err)
		}
	}
	return b.String()
}
