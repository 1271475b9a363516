// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers that keep test setup short and fail the
// test on error.
//
// Common helpers include environment management (MustSetenv, SetConfigHome),
// afero fixtures (WriteFiles, ReadFile), and a deterministic StepClock.
package testutil
