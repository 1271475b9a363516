// SPDX-License-Identifier: MPL-2.0

// Package platform resolves per-user directories that differ between
// operating systems.
package platform
