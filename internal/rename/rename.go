// SPDX-License-Identifier: MPL-2.0

// Package rename plans and applies batch renames of the regular files in one
// directory.
//
// Planning never touches the filesystem beyond reading the directory, so a
// dry run reports exactly the actions a real run would attempt.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/toolbelt/toolbelt/internal/fsutil"
	"github.com/toolbelt/toolbelt/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

var (
	// ErrInvalidPattern is wrapped when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrTargetExists is the sentinel error wrapped by TargetExistsError.
	ErrTargetExists = errors.New("target exists")
)

// TargetExistsError is returned when a rename would overwrite an existing entry.
type TargetExistsError struct {
	Name string
}

// Error implements the error interface.
func (e *TargetExistsError) Error() string {
	return "Target file already exists: " + e.Name
}

// Unwrap returns ErrTargetExists for errors.Is() compatibility.
func (e *TargetExistsError) Unwrap() error { return ErrTargetExists }

type (
	// Options controls how new names are derived.
	Options struct {
		// Pattern is the text (or regular expression) to search for.
		Pattern string
		// Replacement replaces every match. With Regex, $1-style group
		// references are expanded.
		Replacement string
		// Regex interprets Pattern as a regular expression.
		Regex bool
		// Logger receives debug output. Nil discards it.
		Logger *log.Logger
	}

	// Action is one planned rename, by base name within Plan.Dir.
	Action struct {
		From string
		To   string
	}

	// Plan is the set of renames computed for a directory.
	Plan struct {
		Dir string
		// Scanned is the number of regular files found in Dir.
		Scanned int
		// Actions are the files whose name changes, in lexical order.
		Actions []Action
	}

	// Outcome is the result of applying one Action.
	Outcome struct {
		Action
		Err error
	}

	// Report summarizes an Apply call.
	Report struct {
		DryRun   bool
		Outcomes []Outcome
		// Renamed counts successful (or, in a dry run, planned) renames.
		Renamed int
		// Errors counts failed renames.
		Errors int
	}
)

// NewPlan lists the regular files directly in dir and computes their new
// names. Directories are skipped and nothing is modified.
func NewPlan(fs afero.Fs, dir string, opts Options) (Plan, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := fsutil.RequireDir(fs, dir); err != nil {
		return Plan{}, err
	}

	renameFn, err := opts.renamer()
	if err != nil {
		return Plan{}, err
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return Plan{}, fmt.Errorf("read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	plan := Plan{Dir: dir}
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			logger.Debug("skipping non-regular entry", "name", entry.Name())
			continue
		}
		plan.Scanned++

		newName := renameFn(entry.Name())
		if newName == entry.Name() {
			continue
		}
		plan.Actions = append(plan.Actions, Action{From: entry.Name(), To: newName})
	}

	logger.Debug("planned renames", "dir", dir, "files", plan.Scanned, "actions", len(plan.Actions))
	return plan, nil
}

func (o Options) renamer() (func(string) string, error) {
	if !o.Regex {
		return func(name string) string {
			return strings.ReplaceAll(name, o.Pattern, o.Replacement)
		}, nil
	}

	re, err := regexp.Compile(o.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, o.Pattern, err)
	}
	return func(name string) string {
		return re.ReplaceAllString(name, o.Replacement)
	}, nil
}

// Apply executes the plan. With dryRun, no filesystem call other than
// reading is made and every action counts as renamed. Otherwise each action
// is attempted in order; a failure is recorded and processing continues.
func Apply(fs afero.Fs, plan Plan, dryRun bool) Report {
	report := Report{DryRun: dryRun, Outcomes: make([]Outcome, 0, len(plan.Actions))}

	for _, action := range plan.Actions {
		outcome := Outcome{Action: action}
		if !dryRun {
			outcome.Err = renameOne(fs, plan.Dir, action)
		}

		if outcome.Err != nil {
			report.Errors++
		} else {
			report.Renamed++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report
}

func renameOne(fs afero.Fs, dir string, action Action) error {
	if action.To == "" {
		return fmt.Errorf("%w: new name for %q is empty", ErrInvalidPattern, action.From)
	}
	if !types.FilesystemPath(action.To).IsBareName() {
		return fmt.Errorf("%w: new name %q is not a plain file name", ErrInvalidPattern, action.To)
	}

	target := filepath.Join(dir, action.To)
	if _, err := fs.Stat(target); err == nil {
		return &TargetExistsError{Name: action.To}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", action.To, err)
	}

	if err := fs.Rename(filepath.Join(dir, action.From), target); err != nil {
		return fmt.Errorf("rename %s: %w", action.From, err)
	}
	return nil
}

// OK reports whether every rename succeeded.
func (r Report) OK() bool { return r.Errors == 0 }
