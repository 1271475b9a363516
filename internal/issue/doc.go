// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// pages, one per failure kind the utilities report.
//
// Every failure a utility reports falls into one Kind. The CLI layer maps a
// Kind to its catalog entry and renders it with glamour when verbose output
// is requested.
package issue
