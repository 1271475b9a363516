// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the toolbelt command tree.
//
// Each utility is a subcommand built by a newXCommand(app) constructor. The
// commands parse flags, call into the matching internal package, and render
// results and failures with the shared lipgloss styles.
package cmd
