// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Adaptive colors pick the light or dark variant from the terminal background.
var (
	accent  = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	muted   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	green   = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	red     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	amber   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	skyBlue = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle      = lipgloss.NewStyle().Foreground(muted)
	okStyle         = lipgloss.NewStyle().Foreground(green)
	errorLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(red)
	warnStyle       = lipgloss.NewStyle().Foreground(amber)

	// keyStyle marks paths and config keys.
	keyStyle   = lipgloss.NewStyle().Foreground(skyBlue)
	valueStyle = okStyle
)
