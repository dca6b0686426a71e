package report

import "github.com/charmbracelet/lipgloss"

// Styles for the grouped report. Centralised so the whole report can be
// re-skinned in one place.
var (
	colorRed    = lipgloss.Color("#EF4444")
	colorOrange = lipgloss.Color("#FF6A00")
	colorYellow = lipgloss.Color("#EAB308")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorDim    = lipgloss.Color("#6B7280")

	criticalHeadingStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	highHeadingStyle = lipgloss.NewStyle().
				Foreground(colorOrange).
				Bold(true)

	mediumHeadingStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)

	lowHeadingStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	skillNameStyle = lipgloss.NewStyle().
			Bold(true)

	blockMarkerStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	warnMarkerStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	triggerDetailStyle = lipgloss.NewStyle().
				Foreground(colorDim)
)
